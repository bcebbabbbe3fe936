// Package queries contains the read side: handlers that read straight from
// the database into view models, bypassing the aggregates.
package queries

import (
	"errors"

	"haul/internal/pkg/errs"
)

const (
	MinPageSize   = 1
	MaxPageSize   = 1000
	MinPageNumber = 1
)

// Paging selects a 1-based page of a list.
type Paging struct {
	size   int
	number int
}

func NewPaging(pageSize, pageNumber int) (Paging, error) {
	var errList []error
	if pageSize < MinPageSize || pageSize > MaxPageSize {
		errList = append(errList, errs.NewValueIsOutOfRangeError("pageSize", pageSize, MinPageSize, MaxPageSize))
	}
	if pageNumber < MinPageNumber {
		errList = append(errList, errs.NewValueIsOutOfRangeError("pageNumber", pageNumber, MinPageNumber, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return Paging{}, err
	}
	return Paging{size: pageSize, number: pageNumber}, nil
}

func (p Paging) Size() int {
	return p.size
}

func (p Paging) Number() int {
	return p.number
}

func (p Paging) Offset() int {
	return (p.number - 1) * p.size
}

// Page is one page of results plus the size of the whole list.
type Page[T any] struct {
	Items      []T
	PageNumber int
	PageSize   int
	TotalCount int64
}
