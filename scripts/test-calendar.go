package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/hockey-fixtures/internal/calendar"
	"github.com/pfrederiksen/hockey-fixtures/internal/fixture"
)

func main() {
	day := time.Date(2014, time.September, 20, 0, 0, 0, 0, time.UTC)

	fixtures := []fixture.Fixture{
		{
			Date:          "20-Sep",
			Day:           day,
			Team:          "L1",
			Opposition:    "Haverhill Ladies 1",
			Venue:         "Long Road",
			Start:         "10:30",
			End:           "12:00",
			UmpiresNeeded: fixture.UmpiresNeeded("L1", false, "Haverhill Ladies 1"),
		},
		{
			Date:          "20-Sep",
			Day:           day,
			Team:          "M1",
			Opposition:    "Cambridge City 1",
			IsAway:        true,
			Venue:         fixture.AwayVenue,
			Start:         fixture.UnknownTime,
			End:           fixture.UnknownTime,
			UmpiresNeeded: fixture.UmpiresNeeded("M1", true, "Cambridge City 1"),
		},
	}

	icsContent := calendar.GenerateICS(fixtures, "Test Fixtures", time.Now())

	filename := "test-fixtures.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated calendar file: %s\n\n", filename)
	fmt.Println("Import it into a calendar app, or read it back with:")
	fmt.Printf("  hockey-fixtures --file %s\n", filename)
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
