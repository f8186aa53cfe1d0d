// Package testdb provides a migrated, seeded PostgreSQL database for
// integration tests.
//
// The database comes from DATABASE_URL (or TABLETOP_TEST_DB_URL) when set;
// otherwise a throwaway container is started with testcontainers-go and
// terminated when the test finishes. Docker must be available in that case.
//
// Typical use from a test built with the integration tag:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.ResetAndSeed(t, db)
//
// ResetAndSeed truncates every table and reloads the "test" fixture set, so
// tests that mutate data should call it first and must not run in parallel
// against the same database. Tests that only need isolation for their own
// writes can use WithTx instead.
package testdb
