package service

// Broadcaster pushes events to connected company dashboards (avoids an
// import cycle with the websocket transport)
type Broadcaster interface {
	BroadcastToCompany(companyID string, msgType string, payload interface{})
}
