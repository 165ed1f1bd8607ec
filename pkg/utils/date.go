package utils

import (
	"log"
	"time"
)

// GetMarketTimeLocation returns the exchange timezone (NSE/BSE).
func GetMarketTimeLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Fatal("Failed to load location", err)
	}
	return loc
}

// TimeNowMarket returns the current time in the exchange timezone.
func TimeNowMarket() time.Time {
	return time.Now().In(GetMarketTimeLocation())
}
