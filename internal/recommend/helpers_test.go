// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// mockDataProvider implements DataProvider over in-memory fixtures.
type mockDataProvider struct {
	surveys      map[int]*SurveyResponse
	items        []CatalogItem
	interactions map[int][]InteractionRecord
	events       map[int][]ActivityEvent
	users        []int

	surveyErr        error
	itemsErr         error
	eventsErr        error
	candidatesErr    error
	interactionsErrs map[int]error

	candidateCalls   atomic.Int32
	interactionCalls atomic.Int32
}

func (m *mockDataProvider) GetSurveyResponse(_ context.Context, userID int) (*SurveyResponse, error) {
	if m.surveyErr != nil {
		return nil, m.surveyErr
	}
	return m.surveys[userID], nil
}

func (m *mockDataProvider) GetAllCatalogItems(_ context.Context) ([]CatalogItem, error) {
	if m.itemsErr != nil {
		return nil, m.itemsErr
	}
	return m.items, nil
}

func (m *mockDataProvider) GetUserInteractions(_ context.Context, userID int) ([]InteractionRecord, error) {
	m.interactionCalls.Add(1)
	if err := m.interactionsErrs[userID]; err != nil {
		return nil, err
	}
	return m.interactions[userID], nil
}

func (m *mockDataProvider) GetUserActivityEvents(_ context.Context, userID int) ([]ActivityEvent, error) {
	if m.eventsErr != nil {
		return nil, m.eventsErr
	}
	return m.events[userID], nil
}

func (m *mockDataProvider) GetCandidateUserIDs(_ context.Context, excludeUserID, limit int) ([]int, error) {
	m.candidateCalls.Add(1)
	if m.candidatesErr != nil {
		return nil, m.candidatesErr
	}
	ids := make([]int, 0, len(m.users))
	for _, id := range m.users {
		if id == excludeUserID {
			continue
		}
		if len(ids) == limit {
			break
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func newMockDataProvider() *mockDataProvider {
	return &mockDataProvider{
		surveys:          make(map[int]*SurveyResponse),
		items:            testCatalog(),
		interactions:     make(map[int][]InteractionRecord),
		events:           make(map[int][]ActivityEvent),
		interactionsErrs: make(map[int]error),
	}
}

// addUser registers a user with a uniform survey and optional history.
func (m *mockDataProvider) addUser(userID, answer int, interactions []InteractionRecord, eventCount int) {
	m.users = append(m.users, userID)
	m.surveys[userID] = uniformSurvey(userID, answer)
	m.interactions[userID] = interactions
	m.events[userID] = viewEvents(userID, eventCount)
}

func testCatalog() []CatalogItem {
	return []CatalogItem{
		{ID: 1, Name: "Hiking", Category: "스포츠", IndoorOutdoor: LocationOutdoor, SocialIndividual: SocialityBoth, Budget: BudgetLow, Difficulty: 3},
		{ID: 2, Name: "Watercolor", Category: "미술", IndoorOutdoor: LocationIndoor, SocialIndividual: SocialityIndividual, Budget: BudgetMedium, Difficulty: 2},
		{ID: 3, Name: "Choir", Category: "음악", IndoorOutdoor: LocationIndoor, SocialIndividual: SocialitySocial, Budget: BudgetLow, Difficulty: 2},
		{ID: 4, Name: "Gardening", Category: "원예", IndoorOutdoor: LocationOutdoor, SocialIndividual: SocialityIndividual, Budget: BudgetLow, Difficulty: 1},
		{ID: 5, Name: "Yoga", Category: "건강", IndoorOutdoor: LocationIndoor, SocialIndividual: SocialitySocial, Budget: BudgetMedium, Difficulty: 2},
		{ID: 6, Name: "Calligraphy", Category: "예술", IndoorOutdoor: LocationIndoor, SocialIndividual: SocialityIndividual, Budget: BudgetLow, Difficulty: 3},
		{ID: 7, Name: "Bird Watching", Category: "자연", IndoorOutdoor: LocationOutdoor, SocialIndividual: SocialityBoth, Budget: BudgetLow, Difficulty: 1},
		{ID: 8, Name: "Ballroom Dance", Category: "스포츠", IndoorOutdoor: LocationIndoor, SocialIndividual: SocialitySocial, Budget: BudgetHigh, Difficulty: 3},
	}
}

func catalogByID() map[int]CatalogItem {
	m := make(map[int]CatalogItem)
	for _, item := range testCatalog() {
		m[item.ID] = item
	}
	return m
}

func uniformSurvey(userID, answer int) *SurveyResponse {
	answers := make(map[string]int, 8)
	for _, q := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		answers[q] = answer
	}
	return &SurveyResponse{UserID: userID, Answers: answers}
}

func viewEvents(userID, n int) []ActivityEvent {
	events := make([]ActivityEvent, 0, n)
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		events = append(events, ActivityEvent{
			UserID:       userID,
			ActivityType: ActivityViewHobby,
			TargetID:     i%8 + 1,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		})
	}
	return events
}

func interaction(userID, itemID int, status string) InteractionRecord {
	item := catalogByID()[itemID]
	return InteractionRecord{UserID: userID, ItemID: itemID, Status: status, Category: item.Category}
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func newTestEngine(dp DataProvider) *Engine {
	e, err := NewEngine(DefaultConfig(), testLogger())
	if err != nil {
		panic(err)
	}
	e.SetDataProvider(dp)
	return e
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
