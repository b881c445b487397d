package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"

	"github.com/google/uuid"
)

// Prospect list sort modes
const (
	ProspectSortNewest = "newest"
	ProspectSortScore  = "score"
)

// ProspectRepository defines the interface for prospect data access.
// Prospects are produced by the external discovery pipeline; the app mostly
// reads them, with Create available for imports and tests.
type ProspectRepository interface {
	Create(prospect *models.Prospect) error
	GetByID(id string) (*models.Prospect, error)
	List(sort string, limit, offset int) ([]*models.Prospect, error)
}

type prospectRepository struct {
	db *sql.DB
}

// NewProspectRepository creates a new ProspectRepository
func NewProspectRepository(db *sql.DB) ProspectRepository {
	return &prospectRepository{db: db}
}

// Create inserts a discovered prospect
func (r *prospectRepository) Create(prospect *models.Prospect) error {
	if prospect == nil {
		return fmt.Errorf("prospect cannot be nil")
	}
	if prospect.Name == "" {
		return fmt.Errorf("prospect name cannot be empty")
	}

	if prospect.ID == "" {
		prospect.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if prospect.DiscoveredAt == 0 {
		prospect.DiscoveredAt = now
	}
	if prospect.LastSeenAt == 0 {
		prospect.LastSeenAt = now
	}

	scoreReasons, err := marshalStrings(prospect.ScoreReasons)
	if err != nil {
		return err
	}
	emails, err := marshalStrings(prospect.Emails)
	if err != nil {
		return err
	}
	websiteFlags, err := marshalStrings(prospect.WebsiteFlags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO prospects (id, name, city, category, phone, website,
			automation_need_score, score_reasons, primary_email, emails,
			linkedin_url, facebook_url, instagram_url, twitter_url,
			cms, has_booking_system, has_live_chat, employee_count, founded_year,
			website_verified, website_trust_score, website_flags,
			discovered_at, last_seen_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		prospect.ID,
		prospect.Name,
		nullableString(prospect.City),
		nullableString(prospect.Category),
		nullableString(prospect.Phone),
		nullableString(prospect.Website),
		prospect.AutomationNeedScore,
		scoreReasons,
		nullableString(prospect.PrimaryEmail),
		emails,
		nullableString(prospect.LinkedinURL),
		nullableString(prospect.FacebookURL),
		nullableString(prospect.InstagramURL),
		nullableString(prospect.TwitterURL),
		nullableString(prospect.CMS),
		prospect.HasBookingSystem,
		prospect.HasLiveChat,
		prospect.EmployeeCount,
		prospect.FoundedYear,
		prospect.WebsiteVerified,
		prospect.WebsiteTrustScore,
		websiteFlags,
		prospect.DiscoveredAt,
		prospect.LastSeenAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create prospect: %w", err)
	}

	return nil
}

// GetByID retrieves a prospect by ID
func (r *prospectRepository) GetByID(id string) (*models.Prospect, error) {
	if id == "" {
		return nil, fmt.Errorf("prospect ID cannot be empty")
	}

	prospect, err := scanProspect(r.db.QueryRow(prospectSelect+" WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prospect by ID: %w", err)
	}

	return prospect, nil
}

// List retrieves prospects sorted by discovery recency or automation score
func (r *prospectRepository) List(sort string, limit, offset int) ([]*models.Prospect, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("limit and offset cannot be negative")
	}

	order := "last_seen_at DESC"
	if sort == ProspectSortScore {
		order = "automation_need_score DESC, last_seen_at DESC"
	}

	rows, err := r.db.Query(
		fmt.Sprintf("%s ORDER BY %s LIMIT ? OFFSET ?", prospectSelect, order),
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list prospects: %w", err)
	}
	defer rows.Close()

	var prospects []*models.Prospect
	for rows.Next() {
		prospect, err := scanProspect(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prospect: %w", err)
		}
		prospects = append(prospects, prospect)
	}

	return prospects, rows.Err()
}

const prospectSelect = `
	SELECT id, name, city, category, phone, website,
		automation_need_score, score_reasons, primary_email, emails,
		linkedin_url, facebook_url, instagram_url, twitter_url,
		cms, has_booking_system, has_live_chat, employee_count, founded_year,
		website_verified, website_trust_score, website_flags,
		discovered_at, last_seen_at
	FROM prospects
`

func scanProspect(row rowScanner) (*models.Prospect, error) {
	prospect := &models.Prospect{}
	var city, category, phone, website, primaryEmail sql.NullString
	var linkedin, facebook, instagram, twitter, cms sql.NullString
	var scoreReasons, emails, websiteFlags sql.NullString

	err := row.Scan(
		&prospect.ID,
		&prospect.Name,
		&city,
		&category,
		&phone,
		&website,
		&prospect.AutomationNeedScore,
		&scoreReasons,
		&primaryEmail,
		&emails,
		&linkedin,
		&facebook,
		&instagram,
		&twitter,
		&cms,
		&prospect.HasBookingSystem,
		&prospect.HasLiveChat,
		&prospect.EmployeeCount,
		&prospect.FoundedYear,
		&prospect.WebsiteVerified,
		&prospect.WebsiteTrustScore,
		&websiteFlags,
		&prospect.DiscoveredAt,
		&prospect.LastSeenAt,
	)
	if err != nil {
		return nil, err
	}

	prospect.City = city.String
	prospect.Category = category.String
	prospect.Phone = phone.String
	prospect.Website = website.String
	prospect.PrimaryEmail = primaryEmail.String
	prospect.LinkedinURL = linkedin.String
	prospect.FacebookURL = facebook.String
	prospect.InstagramURL = instagram.String
	prospect.TwitterURL = twitter.String
	prospect.CMS = cms.String

	if prospect.ScoreReasons, err = unmarshalStrings(scoreReasons); err != nil {
		return nil, err
	}
	if prospect.Emails, err = unmarshalStrings(emails); err != nil {
		return nil, err
	}
	if prospect.WebsiteFlags, err = unmarshalStrings(websiteFlags); err != nil {
		return nil, err
	}

	return prospect, nil
}

func marshalStrings(values []string) (interface{}, error) {
	if values == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to encode string list: %w", err)
	}
	return string(encoded), nil
}

func unmarshalStrings(column sql.NullString) ([]string, error) {
	if !column.Valid || column.String == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(column.String), &values); err != nil {
		return nil, fmt.Errorf("failed to decode string list: %w", err)
	}
	return values, nil
}
