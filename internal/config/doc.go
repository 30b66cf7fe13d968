// Package config resolves the go-bank settings: the interest rate applied by
// the bank, the log level and the storage backend (file, sqlite or postgres).
//
// Sources are merged in this order, each overriding the non-zero fields of
// the previous ones: APP_*/STORAGE_* environment variables, command line
// flags, then the JSON file named by CONFIG or -c. Whatever is still unset
// takes its [Default]. Use [GetStructuredConfig].
package config
