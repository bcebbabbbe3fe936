package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) (Page[OrderView], error) {
	if err := query.Validate(); err != nil {
		return Page[OrderView]{}, err
	}
	return listOrders(ctx, h.db, "o.created_by = ?", query.Username(), query.Paging())
}
