package register_click

// Request модель запроса регистрации перехода из каталога
type Request struct {
	SalonID   int64   // ID салона, на который перешел клиент
	SessionID *string // идентификатор сессии клиента (опционально, для аналитики)
}
