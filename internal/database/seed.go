// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package database

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/tomtom215/hobbyrec/internal/logging"
	"github.com/tomtom215/hobbyrec/internal/recommend"
)

// seedCatalog is the demo hobby catalog.
var seedCatalog = []recommend.CatalogItem{
	{ID: 1, Name: "등산", Category: "스포츠", IndoorOutdoor: recommend.LocationOutdoor, SocialIndividual: recommend.SocialityBoth, Budget: recommend.BudgetLow, Difficulty: 3},
	{ID: 2, Name: "수채화", Category: "미술", IndoorOutdoor: recommend.LocationIndoor, SocialIndividual: recommend.SocialityIndividual, Budget: recommend.BudgetMedium, Difficulty: 2},
	{ID: 3, Name: "합창", Category: "음악", IndoorOutdoor: recommend.LocationIndoor, SocialIndividual: recommend.SocialitySocial, Budget: recommend.BudgetLow, Difficulty: 2},
	{ID: 4, Name: "텃밭 가꾸기", Category: "원예", IndoorOutdoor: recommend.LocationOutdoor, SocialIndividual: recommend.SocialityIndividual, Budget: recommend.BudgetLow, Difficulty: 1},
	{ID: 5, Name: "요가", Category: "건강", IndoorOutdoor: recommend.LocationIndoor, SocialIndividual: recommend.SocialitySocial, Budget: recommend.BudgetMedium, Difficulty: 2},
	{ID: 6, Name: "서예", Category: "예술", IndoorOutdoor: recommend.LocationIndoor, SocialIndividual: recommend.SocialityIndividual, Budget: recommend.BudgetLow, Difficulty: 3},
	{ID: 7, Name: "탐조", Category: "자연", IndoorOutdoor: recommend.LocationOutdoor, SocialIndividual: recommend.SocialityBoth, Budget: recommend.BudgetLow, Difficulty: 1},
	{ID: 8, Name: "댄스스포츠", Category: "스포츠", IndoorOutdoor: recommend.LocationIndoor, SocialIndividual: recommend.SocialitySocial, Budget: recommend.BudgetHigh, Difficulty: 3},
	{ID: 9, Name: "사진", Category: "미술", IndoorOutdoor: recommend.LocationBoth, SocialIndividual: recommend.SocialityIndividual, Budget: recommend.BudgetHigh, Difficulty: 3},
	{ID: 10, Name: "게이트볼", Category: "스포츠", IndoorOutdoor: recommend.LocationOutdoor, SocialIndividual: recommend.SocialitySocial, Budget: recommend.BudgetLow, Difficulty: 2},
	{ID: 11, Name: "도자기", Category: "공예", IndoorOutdoor: recommend.LocationIndoor, SocialIndividual: recommend.SocialityBoth, Budget: recommend.BudgetHigh, Difficulty: 4},
	{ID: 12, Name: "독서 모임", Category: "문화", IndoorOutdoor: recommend.LocationIndoor, SocialIndividual: recommend.SocialitySocial, Budget: recommend.BudgetLow, Difficulty: 1},
	{ID: 13, Name: "우쿨렐레", Category: "음악", IndoorOutdoor: recommend.LocationIndoor, SocialIndividual: recommend.SocialityBoth, Budget: recommend.BudgetMedium, Difficulty: 2},
	{ID: 14, Name: "걷기 여행", Category: "여행", IndoorOutdoor: recommend.LocationOutdoor, SocialIndividual: recommend.SocialityBoth, Budget: recommend.BudgetMedium, Difficulty: 2},
	{ID: 15, Name: "뜨개질", Category: "공예", IndoorOutdoor: recommend.LocationIndoor, SocialIndividual: recommend.SocialityIndividual, Budget: recommend.BudgetLow, Difficulty: 2},
	{ID: 16, Name: "골프", Category: "스포츠", IndoorOutdoor: recommend.LocationOutdoor, SocialIndividual: recommend.SocialitySocial, Budget: recommend.BudgetHigh, Difficulty: 4},
	{ID: 17, Name: "명상", Category: "건강", IndoorOutdoor: recommend.LocationBoth, SocialIndividual: recommend.SocialityIndividual, Budget: recommend.BudgetLow, Difficulty: 1},
	{ID: 18, Name: "요리 교실", Category: "요리", IndoorOutdoor: recommend.LocationIndoor, SocialIndividual: recommend.SocialitySocial, Budget: recommend.BudgetMedium, Difficulty: 2},
	{ID: 19, Name: "바둑", Category: "문화", IndoorOutdoor: recommend.LocationIndoor, SocialIndividual: recommend.SocialitySocial, Budget: recommend.BudgetLow, Difficulty: 4},
	{ID: 20, Name: "캠핑", Category: "여행", IndoorOutdoor: recommend.LocationOutdoor, SocialIndividual: recommend.SocialityBoth, Budget: recommend.BudgetHigh, Difficulty: 3},
}

// seedStatuses are the interaction statuses drawn for demo links.
var seedStatuses = []string{
	recommend.StatusInterested,
	recommend.StatusLearning,
	recommend.StatusCompleted,
}

// SeedOptions controls the amount of demo data.
type SeedOptions struct {
	Users int
	// SurveyEvery leaves every n-th user without a survey. Zero gives every user one.
	SurveyEvery int
	MaxHobbies  int
	MaxEvents   int
	Seed        uint64
}

// DefaultSeedOptions returns the demo data volume used by SEED_MOCK_DATA.
func DefaultSeedOptions() SeedOptions {
	return SeedOptions{
		Users:       40,
		SurveyEvery: 10,
		MaxHobbies:  5,
		MaxEvents:   80,
		Seed:        20260101,
	}
}

// SeedMockData seeds the database with deterministic demo data.
// This is intended for local development and demos only.
func (db *DB) SeedMockData(ctx context.Context, opts SeedOptions) error {
	logging.Info().Int("users", opts.Users).Msg("Seeding database with mock data...")

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	for i := range seedCatalog {
		if err := db.InsertCatalogItem(ctx, &seedCatalog[i]); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	for userID := 1; userID <= opts.Users; userID++ {
		if err := db.InsertUser(ctx, userID, fmt.Sprintf("회원%03d", userID)); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}

		if opts.SurveyEvery == 0 || userID%opts.SurveyEvery != 0 {
			if err := db.UpsertSurveyResponse(ctx, seedSurvey(rng, userID, base)); err != nil {
				return fmt.Errorf("seed surveys: %w", err)
			}
		}

		hobbies := seedHobbyIDs(rng, opts.MaxHobbies)
		for _, hobbyID := range hobbies {
			status := seedStatuses[rng.IntN(len(seedStatuses))]
			if err := db.UpsertUserHobby(ctx, userID, hobbyID, status); err != nil {
				return fmt.Errorf("seed user hobbies: %w", err)
			}
		}

		if err := db.seedActivity(ctx, rng, userID, hobbies, opts.MaxEvents, base); err != nil {
			return fmt.Errorf("seed activity: %w", err)
		}
	}

	logging.Info().
		Int("hobbies", len(seedCatalog)).
		Int("users", opts.Users).
		Msg("Mock data seeded")
	return nil
}

// seedSurvey draws answers for the eight survey questions.
func seedSurvey(rng *rand.Rand, userID int, base time.Time) *recommend.SurveyResponse {
	answers := make(map[string]int, 8)
	for q := 1; q <= 8; q++ {
		answers[strconv.Itoa(q)] = 1 + rng.IntN(5)
	}
	return &recommend.SurveyResponse{
		UserID:    userID,
		Answers:   answers,
		UpdatedAt: base.Add(time.Duration(userID) * time.Hour),
	}
}

// seedHobbyIDs draws up to max distinct catalog ids.
func seedHobbyIDs(rng *rand.Rand, maxHobbies int) []int {
	if maxHobbies <= 0 {
		return nil
	}
	n := rng.IntN(maxHobbies + 1)
	perm := rng.Perm(len(seedCatalog))
	ids := make([]int, 0, n)
	for _, idx := range perm[:n] {
		ids = append(ids, seedCatalog[idx].ID)
	}
	return ids
}

// seedActivity writes a spread of views and interest adds for one user.
func (db *DB) seedActivity(ctx context.Context, rng *rand.Rand, userID int, hobbies []int, maxEvents int, base time.Time) error {
	if maxEvents <= 0 {
		return nil
	}

	count := rng.IntN(maxEvents + 1)
	for i := 0; i < count; i++ {
		event := &recommend.ActivityEvent{
			UserID:       userID,
			ActivityType: recommend.ActivityViewHobby,
			TargetID:     seedCatalog[rng.IntN(len(seedCatalog))].ID,
			CreatedAt:    base.Add(time.Duration(i) * 37 * time.Minute),
		}
		if len(hobbies) > 0 && rng.IntN(4) == 0 {
			event.ActivityType = recommend.ActivityAddHobbyInterest
			event.TargetID = hobbies[rng.IntN(len(hobbies))]
		}
		if err := db.InsertActivityEvent(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
