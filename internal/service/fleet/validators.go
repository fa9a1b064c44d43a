package fleet

func isValidTruckStatus(status string) bool {
	switch status {
	case "available", "free", "on_delivery", "maintenance":
		return true
	default:
		return false
	}
}

func isValidCrewStatus(status string) bool {
	switch status {
	case "active", "accepted", "in_progress", "delivered", "completed", "cancelled":
		return true
	default:
		return false
	}
}
