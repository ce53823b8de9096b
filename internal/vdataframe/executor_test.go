package vdataframe_test

import (
	"context"

	"github.com/afard/VerticaPy/internal/domain"
)

// fakeExecutor is a scripted domain.Executor. Probe statements are recorded
// so tests can assert exactly which round trips were issued.
type fakeExecutor struct {
	metas     []domain.ColumnMeta
	version   domain.Version
	scalars   []string
	scalarErr error
	queryErr  error
	log       []string
}

func (f *fakeExecutor) Query(_ context.Context, sql string) error {
	f.log = append(f.log, sql)
	return f.queryErr
}

func (f *fakeExecutor) QueryScalar(_ context.Context, sql string) (string, error) {
	f.log = append(f.log, sql)
	if f.scalarErr != nil {
		return "", f.scalarErr
	}
	if len(f.scalars) == 0 {
		return "", nil
	}
	out := f.scalars[0]
	f.scalars = f.scalars[1:]
	return out, nil
}

func (f *fakeExecutor) Describe(_ context.Context, _ string) ([]domain.ColumnMeta, error) {
	return f.metas, nil
}

func (f *fakeExecutor) Version(_ context.Context) (domain.Version, error) {
	if f.version == (domain.Version{}) {
		return domain.Version{Major: 12}, nil
	}
	return f.version, nil
}
