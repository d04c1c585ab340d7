package status

import (
	"watchfloor/internal/domain/compliance"
	"watchfloor/internal/domain/operation"
)

type Request struct {
	OperatorID   string
	ArticleLimit int
}

type Response struct {
	Operator       operation.Operator          `json:"operator"`
	Directive      *operation.Directive        `json:"directive,omitempty"`
	Public         operation.PublicMetrics     `json:"public"`
	Reluctance     operation.ReluctanceMetrics `json:"reluctance"`
	WarningLevel   string                      `json:"warning_level"`
	Assessment     compliance.Assessment       `json:"assessment"`
	OpenProtests   []operation.Protest         `json:"open_protests"`
	RecentArticles []operation.NewsArticle     `json:"recent_articles"`
	PendingBooks   []operation.BookPublication `json:"pending_books"`
}
