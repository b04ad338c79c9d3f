package domain

import "time"

// CatalogImpression факт показа салона на странице каталога
// Append-only запись: используется для биллинга и аналитики, никогда не изменяется
type CatalogImpression struct {
	ID             int64
	SalonID        int64
	ImpressionDate time.Time
	ImpressionHour int // 0-23, для почасовой аналитики
	Position       int // позиция на странице, начиная с 1
	IsPromoted     bool
	Cost           float64 // 0 для органических показов
}

// CatalogClick факт перехода на страницу салона из каталога
// Append-only запись
type CatalogClick struct {
	ID         int64
	SalonID    int64
	ClickedAt  time.Time
	IsPromoted bool
	Cost       float64 // 0 для органических кликов
	SessionID  *string
}
