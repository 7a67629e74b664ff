// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cms

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

func newTestService(t *testing.T) (*Service, docstore.Store) {
	t.Helper()
	store := docstore.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(NewDocumentRepository(store), logger), store
}

func count(t *testing.T, store docstore.Store, collection string) int {
	t.Helper()
	n, err := store.Count(context.Background(), collection, docstore.All())
	require.NoError(t, err)
	return n
}

/*
TestSingleton_PeekDoesNotPersist verifies the public read serves defaults
without writing them.
*/
func TestSingleton_PeekDoesNotPersist(t *testing.T) {
	service, store := newTestService(t)

	home, err := service.home.Peek(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Hukuki Süreçleri", home.HeroTitle)
	assert.Len(t, home.FeaturesItems, 4)
	assert.Empty(t, home.ID)
	assert.Zero(t, count(t, store, schema.CollectionHomePageContent))
}

/*
TestSingleton_GetCreatesOnce verifies get-or-create-default.
*/
func TestSingleton_GetCreatesOnce(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	first, err := service.menu.Get(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.NotNil(t, first.CreatedAt)
	assert.NotEmpty(t, first.MenuItems)

	second, err := service.menu.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, count(t, store, schema.CollectionMenuConfig))
}

/*
TestSingleton_UpdateUpserts covers the first write and a later partial update.
*/
func TestSingleton_UpdateUpserts(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	created, err := service.contact.Update(ctx, map[string]any{"office_hours": "7/24"})
	require.NoError(t, err)
	assert.Equal(t, "7/24", created.OfficeHours)
	assert.Equal(t, "İletişim", created.HeroTitle)
	assert.Equal(t, 1, count(t, store, schema.CollectionContactPageContent))

	updated, err := service.contact.Update(ctx, map[string]any{"hero_title": "Bize Ulaşın", "faq_items": nil})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Bize Ulaşın", updated.HeroTitle)
	assert.Equal(t, "7/24", updated.OfficeHours)
	assert.Equal(t, []FAQItem{}, updated.FAQItems)

	_, err = service.contact.Update(ctx, map[string]any{"contact_email": "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)

	_, err = service.contact.Update(ctx, map[string]any{"faq_items": "none"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperr.As(err).HTTPStatus)
}

/*
TestLegalAid_MergePolicy covers sticky notes, ignored empties and clearing lists.
*/
func TestLegalAid_MergePolicy(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	initial, err := service.legalAid.Get(ctx)
	require.NoError(t, err)
	require.Len(t, initial.BaroContacts, 3)

	withNotes, err := service.legalAid.Update(ctx, map[string]any{"important_notes": []any{"Başvuru ücretsizdir"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Başvuru ücretsizdir"}, withNotes.ImportantNotes)

	tests := []struct {
		name    string
		payload map[string]any
		check   func(t *testing.T, info *LegalAidInfo)
	}{
		{
			name:    "NotesAreSticky",
			payload: map[string]any{"title": "Adli Yardım"},
			check: func(t *testing.T, info *LegalAidInfo) {
				assert.Equal(t, "Adli Yardım", info.Title)
				assert.Equal(t, []string{"Başvuru ücretsizdir"}, info.ImportantNotes)
			},
		},
		{
			name:    "EmptyStringIsIgnored",
			payload: map[string]any{"description": "", "contact_info": map[string]any{}},
			check: func(t *testing.T, info *LegalAidInfo) {
				assert.Equal(t, initial.Description, info.Description)
				assert.Equal(t, initial.ContactInfo, info.ContactInfo)
			},
		},
		{
			name:    "EmptyListClears",
			payload: map[string]any{"baro_contacts": []any{}},
			check: func(t *testing.T, info *LegalAidInfo) {
				assert.Empty(t, info.BaroContacts)
				assert.Len(t, info.Helplines, len(initial.Helplines))
			},
		},
		{
			name:    "NullListClears",
			payload: map[string]any{"helplines": nil},
			check: func(t *testing.T, info *LegalAidInfo) {
				assert.Equal(t, []Helpline{}, info.Helplines)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := service.legalAid.Update(ctx, tt.payload)
			require.NoError(t, err)
			tt.check(t, info)

			stored, err := service.legalAid.Get(ctx)
			require.NoError(t, err)
			tt.check(t, stored)
		})
	}
}

/*
TestAdSettings_HTTP covers the lenient admin body and the public shape.
*/
func TestAdSettings_HTTP(t *testing.T) {
	service, _ := newTestService(t)
	handler := NewHandler(service)

	router := chi.NewRouter()
	router.Route("/api", func(api chi.Router) {
		handler.PublicRoutes(api)
		api.Route("/admin", handler.AdminRoutes)
	})

	// Public defaults before anything is stored.
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/ad-settings", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var public map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &public))
	assert.Equal(t, false, public["is_active"])

	// A double-encoded body is accepted.
	body, err := json.Marshal(`{"isActive": true, "horizontal_code": "<ins></ins>"}`)
	require.NoError(t, err)

	recorder = httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/api/admin/ad-settings", strings.NewReader(string(body)))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var admin map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &admin))
	assert.Equal(t, true, admin["is_active"])
	assert.Equal(t, "<ins></ins>", admin["horizontalCode"])
	assert.NotEmpty(t, admin["id"])

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/ad-settings", nil))
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &public))
	assert.Equal(t, true, public["is_active"])
	assert.NotContains(t, public, "id")
}
