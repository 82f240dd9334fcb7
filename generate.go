package docextract

//go:generate go run ./db/ent
