// Command seed posts a handful of demo travelers to a running server so the
// matching flow can be exercised by hand: three overlapping layovers at CDG
// and two at FRA.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"layovermeet/backend/internal/models"
	"layovermeet/backend/internal/travelcode"
)

type registration struct {
	FirstName     string           `json:"first_name"`
	Age           int              `json:"age"`
	Gender        models.Gender    `json:"gender"`
	OriginCountry string           `json:"origin_country"`
	Languages     []string         `json:"languages"`
	TravelCode    travelcode.Input `json:"travel_code"`
}

func main() {
	baseURL := "http://localhost:8080"
	if len(os.Args) > 1 {
		baseURL = os.Args[1]
	}

	now := time.Now()
	code := func(flight, dep, arr, layover string, startIn, endIn time.Duration) travelcode.Input {
		return travelcode.Input{
			FlightNumber:     flight,
			DepartureAirport: dep,
			ArrivalAirport:   arr,
			LayoverAirport:   layover,
			LayoverStart:     now.Add(startIn),
			LayoverEnd:       now.Add(endIn),
		}
	}

	demo := []registration{
		{"João", 28, models.GenderMale, "Portugal", []string{"Portuguese", "English", "Spanish"},
			code("TP441", "LIS", "JFK", "CDG", 2*time.Hour, 5*time.Hour)},
		{"Maria", 32, models.GenderFemale, "Brazil", []string{"Portuguese", "English", "French"},
			code("AF447", "GRU", "LHR", "CDG", 90*time.Minute, 4*time.Hour)},
		{"Alex", 25, models.GenderOther, "Canada", []string{"English", "French"},
			code("AC874", "YYZ", "FCO", "CDG", 150*time.Minute, 6*time.Hour)},
		{"Hans", 35, models.GenderMale, "Germany", []string{"German", "English"},
			code("LH456", "MUC", "JFK", "FRA", 3*time.Hour, 7*time.Hour)},
		{"Sophie", 29, models.GenderFemale, "Netherlands", []string{"Dutch", "English", "German"},
			code("KL842", "AMS", "LAX", "FRA", 168*time.Minute, 390*time.Minute)},
	}

	for _, reg := range demo {
		body, err := json.Marshal(reg)
		if err != nil {
			log.Fatalf("encode %s: %v", reg.FirstName, err)
		}

		resp, err := http.Post(baseURL+"/travelers", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("register %s: %v", reg.FirstName, err)
		}

		var traveler models.Traveler
		if resp.StatusCode != http.StatusCreated {
			log.Fatalf("register %s: unexpected status %s", reg.FirstName, resp.Status)
		}
		if err := json.NewDecoder(resp.Body).Decode(&traveler); err != nil {
			log.Fatalf("decode response for %s: %v", reg.FirstName, err)
		}
		resp.Body.Close()

		fmt.Printf("registered %s as %s (%s, %s)\n",
			reg.FirstName, traveler.Nickname, traveler.Itinerary.LayoverAirport, traveler.ID)
	}
}
