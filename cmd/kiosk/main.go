package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/Nandu8821/Attendance-Project/config"
	"github.com/Nandu8821/Attendance-Project/jobs"
	"github.com/Nandu8821/Attendance-Project/recorder"
)

// The kiosk is a terminal front end for the recorder: it walks one
// employee through email, site, shift, entry type and submission against a
// running attendance store.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using process environment: %v", err)
	}

	refdata, err := config.LoadReferenceData()
	if err != nil {
		log.Fatalf("Failed to load reference data: %v", err)
	}

	baseURL := config.GetEnvDefault("ATTENDANCE_URL", "http://localhost:5000")
	client := recorder.NewClient(baseURL)

	var statuses recorder.StatusRepository
	memory := recorder.NewMemoryStatusRepository()
	if rdb, err := config.ConnectRedis(); err == nil {
		statuses = recorder.NewRedisStatusRepository(rdb)
	} else {
		log.Printf("Warning: Redis unavailable, caching statuses in memory: %v", err)
		statuses = memory
	}

	// Kiosks run unattended across midnight; sweep yesterday's statuses.
	c := cron.New()
	if err := jobs.InitCronJobs(c, memory); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	opts := recorder.Options{
		ReferenceData: refdata,
		Client:        client,
		Statuses:      statuses,
	}
	if lat, lng := os.Getenv("KIOSK_LAT"), os.Getenv("KIOSK_LNG"); lat != "" && lng != "" {
		pos, err := parsePosition(lat, lng)
		if err != nil {
			log.Fatalf("Invalid KIOSK_LAT/KIOSK_LNG: %v", err)
		}
		opts.Geolocator = recorder.StaticGeolocator{Position: pos}
	}
	if path := os.Getenv("KIOSK_PHOTO"); path != "" {
		opts.Camera = recorder.FileCamera{Path: path}
	}
	rec := recorder.New(opts)
	suggester := recorder.NewEmailSuggester(refdata.Roster())

	ctx := context.Background()
	in := bufio.NewScanner(os.Stdin)

	email := prompt(in, "Email address")
	if matches := suggester.Suggest(email, 5); len(matches) > 0 {
		fmt.Println("Did you mean:", strings.Join(matches, ", "))
		if !strings.EqualFold(matches[0], email) {
			email = prompt(in, "Email address (exact)")
		}
	}
	if err := rec.SelectEmail(ctx, email); err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("Welcome %s (%s)\n", rec.Form().Name, rec.Form().EmpCode)
	status := rec.Status()
	fmt.Printf("Today: checked in=%v, checked out=%v\n", status.HasCheckedIn, status.HasCheckedOut)
	if rec.Done() {
		fmt.Println("You have already submitted both Check In and Check Out for today.")
		return
	}

	rec.SetSite(prompt(in, "Site ("+strings.Join(refdata.Sites(), " | ")+")"))
	rec.SetWorkShift(prompt(in, "Work shift ("+strings.Join(refdata.WorkShifts(), " | ")+")"))
	rec.SetEntryType(prompt(in, "Entry type ("+strings.Join(rec.AvailableEntryTypes(), " | ")+")"))

	if label, err := rec.ResolveLocation(ctx); err != nil {
		log.Printf("Location: %s (%v)", label, err)
	} else {
		fmt.Println("Location:", label)
	}

	if err := rec.CapturePhoto(ctx); err != nil {
		log.Printf("Photo: %v", err)
	}

	if err := rec.Submit(ctx); err != nil {
		log.Fatalf("Submission rejected: %v", err)
	}
	fmt.Println("Attendance submitted successfully!")
}

func parsePosition(lat, lng string) (recorder.Position, error) {
	var pos recorder.Position
	if _, err := fmt.Sscanf(lat, "%f", &pos.Latitude); err != nil {
		return pos, err
	}
	if _, err := fmt.Sscanf(lng, "%f", &pos.Longitude); err != nil {
		return pos, err
	}
	return pos, nil
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}
