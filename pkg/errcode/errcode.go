package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	MappingFileError

	// Logging errors
	CreateLogFileError

	// Normalization errors
	NormValueCollisionError

	// Triple generation errors
	TripleIncompleteRecordError

	// Lookup table errors
	LookupFilterMismatchError
	LookupReadError
	LookupCacheError

	// Identifier conversion errors
	ConverterNotSetError
	IDConvInvalidPageIDError

	// CSV source errors
	CSVColumnsError

	// Cypher API errors
	CypherMissingLimitError
	CypherRequestError
	CypherResponseError
	CypherDecodeError
	APICacheError

	// Database errors
	DBConnectionError
	PgUnknownColumnError
	PgQueryError

	// CLI errors
	UnknownSourceError
	SourceNotSetError
)
