package domain

import (
	"context"
	"fmt"
)

// Version is an engine version triple as reported by SELECT version().
type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast reports whether v is greater than or equal to min.
func (v Version) AtLeast(min Version) bool {
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	if v.Minor != min.Minor {
		return v.Minor > min.Minor
	}
	return v.Patch >= min.Patch
}

// ColumnMeta describes one column of a remote relation.
type ColumnMeta struct {
	Name string
	Type string
}

// Executor is the single engine capability the translation layer consumes.
// Implementations run opaque SQL text against the remote engine; no data
// leaves the engine except scalar probe results and column metadata.
type Executor interface {
	// Query runs sql and discards any rows. Only success or failure matters;
	// it is used for bounded validation probes.
	Query(ctx context.Context, sql string) error

	// QueryScalar runs sql and returns the first column of the first row as
	// text. An empty result yields an empty string and no error.
	QueryScalar(ctx context.Context, sql string) (string, error)

	// Describe returns the column names and engine type strings of relation.
	Describe(ctx context.Context, relation string) ([]ColumnMeta, error)

	// Version reports the engine version triple. Implementations may cache
	// the result after the first round trip.
	Version(ctx context.Context) (Version, error)
}
