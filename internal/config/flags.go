package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses the configuration flags at the head of args and returns
// the arguments left after them.
//
// Flags:
//
//	-driver storage driver: file, sqlite or postgres
//	-d database DSN
//	-accounts-file accounts JSON document path
//	-clients-file clients JSON document path
//	-interest-rate savings interest rate (e.g. 0.5)
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var driver string
	var databaseDSN string
	var accountsFile string
	var clientsFile string
	var interestRate float64
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("bank", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&driver, "driver", "", "Storage driver: file, sqlite or postgres")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&accountsFile, "accounts-file", "", "Accounts JSON file path")
	fs.StringVar(&clientsFile, "clients-file", "", "Clients JSON file path")
	fs.Float64Var(&interestRate, "interest-rate", 0, "Savings interest rate")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			InterestRate: interestRate,
			LogLevel:     logLevel,
		},
		Storage: Storage{
			Driver: driver,
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				Accounts: accountsFile,
				Clients:  clientsFile,
			},
		},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, fs.Args(), nil
}
