// Package postgres provides the PostgreSQL implementations of the store
// interfaces: the existence Checker and the category, review, comment and user
// stores. Sort keys and lookup tables are resolved through fixed allow-lists
// before any SQL is built, and driver errors are classified by MapError.
package postgres
