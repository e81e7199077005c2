// Package sqlite implements the mirror store on an embedded SQLite
// database. The mirror holds upserted copies of the slow-moving upstream
// entities so the admin surface can browse and report without burning API
// quota, plus the sync-run bookkeeping tables.
package sqlite
