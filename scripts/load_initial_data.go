package main

import (
	"choir-portal-backend/internal/config"
	"choir-portal-backend/internal/database"
	"choir-portal-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type MemberData struct {
	FullName    string `yaml:"full_name"`
	Email       string `yaml:"email"`
	PhoneNumber string `yaml:"phone_number,omitempty"`
	Category    string `yaml:"category"`
	IsAdmin     bool   `yaml:"is_admin"`
	IsActive    bool   `yaml:"is_active"`
}

type SongData struct {
	Title      string `yaml:"title"`
	Author     string `yaml:"author,omitempty"`
	DefaultKey string `yaml:"default_key,omitempty"`
	TempoBPM   int    `yaml:"tempo_bpm,omitempty"`
	Tags       string `yaml:"tags,omitempty"`
}

type ShiftData struct {
	Name           string `yaml:"name"`
	LeaderEmail    string `yaml:"leader_email"`
	CreatedByEmail string `yaml:"created_by_email"`
	StartDate      string `yaml:"start_date"`
	EndDate        string `yaml:"end_date"`
	Status         string `yaml:"status,omitempty"`
	Notes          string `yaml:"notes,omitempty"`
}

// File structures
type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

type SongsFile struct {
	Songs []SongData `yaml:"songs"`
}

type ShiftsFile struct {
	Shifts []ShiftData `yaml:"shifts"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	members, err := loadMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	songs, err := loadSongs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load songs: %w", err)
	}

	shifts, err := loadShifts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load shifts: %w", err)
	}

	// Create members first so shifts can resolve leaders by email
	memberMap := make(map[string]*models.ChoirMember)
	memberCreated := 0
	for _, memberData := range members {
		member, created, err := createMember(db, memberData)
		if err != nil {
			return fmt.Errorf("failed to create member %s: %w", memberData.Email, err)
		}
		memberMap[memberData.Email] = member
		if created {
			memberCreated++
		}
	}
	log.Printf("📋 Members: %d created, %d total", memberCreated, len(members))

	// Create songs
	songCreated := 0
	for _, songData := range songs {
		_, created, err := createSong(db, songData)
		if err != nil {
			return fmt.Errorf("failed to create song %s: %w", songData.Title, err)
		}
		if created {
			songCreated++
		}
	}
	log.Printf("📋 Songs: %d created, %d total", songCreated, len(songs))

	// Create leadership shifts
	shiftCreated := 0
	for _, shiftData := range shifts {
		_, created, err := createShift(db, shiftData, memberMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create shift %s: %v", shiftData.Name, err)
			continue // Continue with other shifts
		}
		if created {
			shiftCreated++
		}
	}
	log.Printf("📋 Shifts: %d created, %d total", shiftCreated, len(shifts))

	return nil
}

func loadMembers(dataDir string) ([]MemberData, error) {
	var allMembers []MemberData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "members") {
			var file MembersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMembers = append(allMembers, file.Members...)
		}
		return nil
	})

	return allMembers, err
}

func loadSongs(dataDir string) ([]SongData, error) {
	var allSongs []SongData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "songs") {
			var file SongsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allSongs = append(allSongs, file.Songs...)
		}
		return nil
	})

	return allSongs, err
}

func loadShifts(dataDir string) ([]ShiftData, error) {
	var allShifts []ShiftData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "shifts") {
			var file ShiftsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allShifts = append(allShifts, file.Shifts...)
		}
		return nil
	})

	return allShifts, err
}

func createMember(db *gorm.DB, memberData MemberData) (*models.ChoirMember, bool, error) {
	var member models.ChoirMember
	if err := db.Where("email = ?", memberData.Email).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			category := models.MemberCategorySinger
			if memberData.Category != "" {
				category = models.MemberCategory(memberData.Category)
			}

			member = models.ChoirMember{
				FullName:    memberData.FullName,
				Email:       memberData.Email,
				PhoneNumber: memberData.PhoneNumber,
				Category:    category,
				IsAdmin:     memberData.IsAdmin,
				IsActive:    memberData.IsActive,
			}

			if err := db.Create(&member).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create member: %w", err)
			}
			return &member, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query member: %w", err)
		}
	}

	return &member, false, nil // created = false (existing)
}

func createSong(db *gorm.DB, songData SongData) (*models.Song, bool, error) {
	var song models.Song
	if err := db.Where("title = ?", songData.Title).First(&song).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			song = models.Song{
				Title:      songData.Title,
				Author:     songData.Author,
				DefaultKey: songData.DefaultKey,
				TempoBPM:   songData.TempoBPM,
				Tags:       songData.Tags,
			}

			if err := db.Create(&song).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create song: %w", err)
			}
			return &song, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query song: %w", err)
		}
	}

	return &song, false, nil // created = false (existing)
}

func createShift(db *gorm.DB, shiftData ShiftData, memberMap map[string]*models.ChoirMember) (*models.LeadershipShift, bool, error) {
	leader := memberMap[shiftData.LeaderEmail]
	if leader == nil {
		return nil, false, fmt.Errorf("leader %s not found for shift %s", shiftData.LeaderEmail, shiftData.Name)
	}

	creator := memberMap[shiftData.CreatedByEmail]
	if creator == nil {
		creator = leader
	}

	startDate, err := time.Parse("2006-01-02", shiftData.StartDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid start_date for shift %s: %w", shiftData.Name, err)
	}

	endDate, err := time.Parse("2006-01-02", shiftData.EndDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid end_date for shift %s: %w", shiftData.Name, err)
	}

	var shift models.LeadershipShift
	if err := db.Where("name = ? AND leader_id = ?", shiftData.Name, leader.ID).First(&shift).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.ShiftStatusUpcoming
			if shiftData.Status != "" {
				status = models.ShiftStatus(shiftData.Status)
			}

			shift = models.LeadershipShift{
				Name:        shiftData.Name,
				StartDate:   startDate,
				EndDate:     endDate,
				LeaderID:    leader.ID,
				Status:      status,
				Notes:       shiftData.Notes,
				CreatedByID: creator.ID,
			}

			if err := db.Create(&shift).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create shift: %w", err)
			}
			return &shift, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query shift: %w", err)
		}
	}

	return &shift, false, nil // created = false (existing)
}
