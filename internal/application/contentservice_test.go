package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twomenstudio/studiopanel/internal/domain/model"
	"github.com/twomenstudio/studiopanel/internal/domain/port/driven"
	"github.com/twomenstudio/studiopanel/internal/seed"
)

// fakeDocStore is an in-memory DocumentStore with an injectable write error.
type fakeDocStore struct {
	docs     map[string]json.RawMessage
	writeErr error
	writes   int
}

var _ driven.DocumentStore = (*fakeDocStore)(nil)

func newFakeDocStore() *fakeDocStore {
	return &fakeDocStore{docs: map[string]json.RawMessage{}}
}

func (f *fakeDocStore) Write(_ context.Context, key string, doc any) error {
	f.writes++
	if f.writeErr != nil {
		return f.writeErr
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	f.docs[key] = raw
	return nil
}

func (f *fakeDocStore) Read(_ context.Context, key string, v any) (bool, error) {
	raw, ok := f.docs[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeDocStore) Delete(_ context.Context, key string) error {
	delete(f.docs, key)
	return nil
}

func (f *fakeDocStore) UsedBytes(_ context.Context) (int64, error) {
	var used int64
	for _, raw := range f.docs {
		used += int64(len(raw))
	}
	return used, nil
}

// fakeSession is an in-memory SessionStore.
type fakeSession struct {
	user *model.User
}

var _ driven.SessionStore = (*fakeSession)(nil)

func (f *fakeSession) Set(_ context.Context, user model.User) error {
	f.user = &user
	return nil
}

func (f *fakeSession) Get(_ context.Context) (*model.User, error) {
	if f.user == nil {
		return nil, nil
	}
	user := *f.user
	return &user, nil
}

func (f *fakeSession) Clear(_ context.Context) error {
	f.user = nil
	return nil
}

// fakeAlerter records every advisory message.
type fakeAlerter struct {
	messages []string
}

var _ driven.Alerter = (*fakeAlerter)(nil)

func (f *fakeAlerter) Alert(_ context.Context, message string) {
	f.messages = append(f.messages, message)
}

func newTestService(t *testing.T, docs *fakeDocStore) (*ContentService, *fakeSession, *fakeAlerter) {
	t.Helper()

	session := &fakeSession{}
	alerts := &fakeAlerter{}
	svc, err := NewContentService(context.Background(), docs, session, alerts, slog.Default())
	require.NoError(t, err)
	return svc, session, alerts
}

func TestHydration_SeedsWhenStoreEmpty(t *testing.T) {
	svc, _, _ := newTestService(t, newFakeDocStore())

	assert.Equal(t, seed.Users(), svc.Users())
	assert.Equal(t, seed.Services(), svc.Services())
	assert.Equal(t, seed.BlogPosts(), svc.BlogPosts())
	assert.Equal(t, seed.Destinations(), svc.Destinations())
	assert.Equal(t, seed.Settings(), svc.Settings())
	assert.Nil(t, svc.CurrentUser())
}

func TestHydration_RoundTrip(t *testing.T) {
	ctx := context.Background()
	docs := newFakeDocStore()

	first, _, _ := newTestService(t, docs)
	added := first.AddDestination(ctx, model.Destination{ID: "99", Country: "Portugal", City: "Lisbon"})
	first.UpdateSettings(ctx, model.SettingsPatch{SiteName: ptr("Renamed Studio")})

	// A fresh store over the same documents sees exactly what was written.
	second, _, _ := newTestService(t, docs)
	assert.Equal(t, first.Destinations(), second.Destinations())
	assert.Equal(t, first.Settings(), second.Settings())
	assert.Equal(t, "Renamed Studio", second.Settings().SiteName)
	assert.Contains(t, second.Destinations(), added)
}

func TestLogin_MatchingCredentialsSetPrincipal(t *testing.T) {
	ctx := context.Background()
	svc, session, _ := newTestService(t, newFakeDocStore())

	admin := seed.Users()[0]
	require.True(t, svc.Login(ctx, admin.Username, admin.Password))

	current := svc.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, admin, *current)

	stored, err := session.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, admin, *stored)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, session, _ := newTestService(t, newFakeDocStore())

	admin := seed.Users()[0]
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", admin.Username, "nope"},
		{"unknown user", "stranger", admin.Password},
		{"swapped pair", admin.Password, admin.Username},
		{"empty pair", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, svc.Login(ctx, tt.username, tt.password))
			assert.Nil(t, svc.CurrentUser())

			stored, err := session.Get(ctx)
			require.NoError(t, err)
			assert.Nil(t, stored)
		})
	}
}

func TestLogout_ClearsPrincipalAndSession(t *testing.T) {
	ctx := context.Background()
	svc, session, _ := newTestService(t, newFakeDocStore())

	admin := seed.Users()[0]
	require.True(t, svc.Login(ctx, admin.Username, admin.Password))

	svc.Logout(ctx)
	assert.Nil(t, svc.CurrentUser())

	stored, err := session.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestSessionRestoredAcrossConstruction(t *testing.T) {
	ctx := context.Background()
	docs := newFakeDocStore()
	session := &fakeSession{}

	first, err := NewContentService(ctx, docs, session, &fakeAlerter{}, slog.Default())
	require.NoError(t, err)
	admin := seed.Users()[0]
	require.True(t, first.Login(ctx, admin.Username, admin.Password))

	second, err := NewContentService(ctx, docs, session, &fakeAlerter{}, slog.Default())
	require.NoError(t, err)

	current := second.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, admin.ID, current.ID)
}

func TestAddUser_CapacityPolicy(t *testing.T) {
	ctx := context.Background()
	svc, _, alerts := newTestService(t, newFakeDocStore())

	// Seed has one user; a second fits.
	_, ok := svc.AddUser(ctx, model.User{ID: "2", Username: "assistant", Password: "pw", Role: model.RoleGuest})
	require.True(t, ok)
	require.Len(t, svc.Users(), 2)
	assert.Empty(t, alerts.messages)

	// At capacity every further add is a silent no-op with an advisory alert.
	_, ok = svc.AddUser(ctx, model.User{ID: "3", Username: "third", Password: "pw", Role: model.RoleAdmin})
	assert.False(t, ok)
	assert.Len(t, svc.Users(), 2)
	assert.Len(t, alerts.messages, 1)
}

func TestAddUser_GeneratesIDWhenAbsent(t *testing.T) {
	svc, _, _ := newTestService(t, newFakeDocStore())
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	user, ok := svc.AddUser(context.Background(), model.User{Username: "assistant", Password: "pw", Role: model.RoleGuest})
	require.True(t, ok)
	assert.Equal(t, "1700000000000", user.ID)
}

func TestUpdateUser_RefreshesAuthenticatedPrincipal(t *testing.T) {
	ctx := context.Background()
	svc, session, _ := newTestService(t, newFakeDocStore())

	admin := seed.Users()[0]
	require.True(t, svc.Login(ctx, admin.Username, admin.Password))

	admin.Password = "rotated-password"
	require.True(t, svc.UpdateUser(ctx, admin))

	current := svc.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "rotated-password", current.Password)

	stored, err := session.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "rotated-password", stored.Password)
}

func TestUpdateUser_OtherAccountLeavesPrincipalAlone(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, newFakeDocStore())

	admin := seed.Users()[0]
	_, ok := svc.AddUser(ctx, model.User{ID: "2", Username: "assistant", Password: "pw", Role: model.RoleGuest})
	require.True(t, ok)
	require.True(t, svc.Login(ctx, admin.Username, admin.Password))

	require.True(t, svc.UpdateUser(ctx, model.User{ID: "2", Username: "assistant", Password: "new", Role: model.RoleGuest}))

	current := svc.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, admin.Password, current.Password)
}

func TestUpdateUser_UnknownIDIsNoop(t *testing.T) {
	svc, _, _ := newTestService(t, newFakeDocStore())

	assert.False(t, svc.UpdateUser(context.Background(), model.User{ID: "missing"}))
	assert.Equal(t, seed.Users(), svc.Users())
}

func TestDeleteUser_PermitsLastAndAuthenticated(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, newFakeDocStore())

	admin := seed.Users()[0]
	require.True(t, svc.Login(ctx, admin.Username, admin.Password))

	// The store does not block deleting the last, currently-authenticated
	// account; the session keeps its dangling principal.
	require.True(t, svc.DeleteUser(ctx, admin.ID))
	assert.Empty(t, svc.Users())
	assert.NotNil(t, svc.CurrentUser())
}

func TestAddService_Prepends(t *testing.T) {
	ctx := context.Background()
	docs := newFakeDocStore()
	require.NoError(t, docs.Write(ctx, "site_services", []model.Service{
		{ID: "1", Title: "Existing", Category: model.CategoryWedding},
	}))

	svc, _, _ := newTestService(t, docs)
	svc.AddService(ctx, model.Service{ID: "x", Title: "Newest", Category: model.CategoryBirthday})

	services := svc.Services()
	require.Len(t, services, 2)
	assert.Equal(t, "x", services[0].ID)
	assert.Equal(t, "1", services[1].ID)
}

func TestServiceGalleryPolicy(t *testing.T) {
	ctx := context.Background()
	svc, _, alerts := newTestService(t, newFakeDocStore())

	gallery := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		gallery = append(gallery, model.NewID(time.UnixMilli(int64(i))))
	}

	stored := svc.AddService(ctx, model.Service{ID: "g", Title: "Gallery", Category: model.CategoryPhotoshoot, Gallery: gallery})

	assert.Len(t, stored.Gallery, 10)
	assert.Equal(t, gallery[0], stored.ImageURL, "primary image tracks the first gallery entry")
	assert.Len(t, alerts.messages, 1)
}

func TestUpdateService_SyncsPrimaryImage(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, newFakeDocStore())

	stored := svc.AddService(ctx, model.Service{ID: "s", Title: "Shoot", Category: model.CategoryPhotoshoot, Gallery: []string{"a.jpg", "b.jpg"}})
	require.Equal(t, "a.jpg", stored.ImageURL)

	stored.Gallery = []string{"b.jpg"}
	require.True(t, svc.UpdateService(ctx, stored))

	services := svc.Services()
	assert.Equal(t, "b.jpg", services[0].ImageURL)
}

func TestBlogPost_DateResetOnEverySave(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, newFakeDocStore())
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	post := svc.AddBlogPost(ctx, model.BlogPost{ID: "p1", Title: "New", Date: "1999-01-01"})
	assert.Equal(t, "2024-06-01", post.Date)

	svc.now = func() time.Time { return time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC) }
	post.Title = "Edited"
	require.True(t, svc.UpdateBlogPost(ctx, post))

	updated, found := svc.BlogPost("p1")
	require.True(t, found)
	assert.Equal(t, "Edited", updated.Title)
	assert.Equal(t, "2024-07-15", updated.Date)
}

func TestAddBlogPost_Prepends(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, newFakeDocStore())

	svc.AddBlogPost(ctx, model.BlogPost{ID: "new", Title: "Latest"})

	posts := svc.BlogPosts()
	require.NotEmpty(t, posts)
	assert.Equal(t, "new", posts[0].ID)
}

func TestAddDestination_Appends(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, newFakeDocStore())

	before := len(svc.Destinations())
	svc.AddDestination(ctx, model.Destination{ID: "new", Country: "Spain", City: "Seville"})

	dests := svc.Destinations()
	require.Len(t, dests, before+1)
	assert.Equal(t, "new", dests[len(dests)-1].ID)
}

func TestUpdateSettings_PatchesOnlySetFields(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, newFakeDocStore())

	before := svc.Settings()
	require.False(t, before.DarkMode)

	after := svc.UpdateSettings(ctx, model.SettingsPatch{DarkMode: ptr(true)})

	want := before
	want.DarkMode = true
	assert.Equal(t, want, after)
	assert.Equal(t, want, svc.Settings())
}

func TestUpdateSettings_SocialLinksReplacedWholesale(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, newFakeDocStore())

	links := model.SocialLinks{Instagram: "https://instagram.com/studio"}
	after := svc.UpdateSettings(ctx, model.SettingsPatch{SocialLinks: &links})

	assert.Equal(t, links, after.SocialLinks)
	assert.Empty(t, after.SocialLinks.Facebook, "shallow merge replaces the whole nested record")
}

func TestQuotaExceeded_KeepsMutationAndWarnsOnce(t *testing.T) {
	ctx := context.Background()
	docs := newFakeDocStore()
	svc, _, alerts := newTestService(t, docs)

	docs.writeErr = driven.ErrQuotaExceeded
	stored := svc.AddDestination(ctx, model.Destination{ID: "q", Country: "Norway", City: "Tromsø"})

	// In-memory state keeps the intended value and exactly one warning fires.
	assert.Contains(t, svc.Destinations(), stored)
	require.Len(t, alerts.messages, 1)
	assert.Contains(t, alerts.messages[0], "Storage limit exceeded")
}

func TestWriteThrough_OneWritePerMutation(t *testing.T) {
	ctx := context.Background()
	docs := newFakeDocStore()
	svc, _, _ := newTestService(t, docs)

	docs.writes = 0
	svc.AddDestination(ctx, model.Destination{ID: "a"})
	assert.Equal(t, 1, docs.writes)

	svc.UpdateSettings(ctx, model.SettingsPatch{DarkMode: ptr(true)})
	assert.Equal(t, 2, docs.writes)
}

func TestHydration_CorruptDocumentFallsBackToSeed(t *testing.T) {
	docs := newFakeDocStore()
	docs.docs["site_users"] = json.RawMessage(`{"not":"a list"}`)

	svc, _, _ := newTestService(t, docs)
	assert.Equal(t, seed.Users(), svc.Users())
}

func TestAccessorsReturnCopies(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, newFakeDocStore())

	svc.AddService(ctx, model.Service{ID: "c", Title: "Copy", Category: model.CategoryWedding, Gallery: []string{"a.jpg"}})

	services := svc.Services()
	services[0].Title = "mutated"
	services[0].Gallery[0] = "mutated.jpg"

	fresh := svc.Services()
	assert.Equal(t, "Copy", fresh[0].Title)
	assert.Equal(t, "a.jpg", fresh[0].Gallery[0])
}

func TestCanManage(t *testing.T) {
	assert.False(t, CanManage(nil))
	assert.False(t, CanManage(&model.User{Role: model.RoleGuest}))
	assert.True(t, CanManage(&model.User{Role: model.RoleAdmin}))
}

func ptr[T any](v T) *T {
	return &v
}
