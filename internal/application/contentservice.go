package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/twomenstudio/studiopanel/internal/domain/model"
	"github.com/twomenstudio/studiopanel/internal/domain/port/driven"
	"github.com/twomenstudio/studiopanel/internal/seed"
)

// Document keys in durable storage. Each key holds one independently
// serialized JSON document.
const (
	keyUsers        = "site_users"
	keyServices     = "site_services"
	keyBlog         = "site_blog"
	keyDestinations = "site_destinations"
	keySettings     = "site_settings"
)

// Capacity policies. Exceeding either is not an error: the mutation is
// silently capped or ignored and the user gets an advisory alert.
const (
	maxUsers         = 2
	maxGalleryImages = 10
)

const (
	msgQuotaExceeded = "Storage limit exceeded! Your changes may not be saved. Please delete some items or use smaller images."
	msgGalleryFull   = "Maximum 10 images allowed per service."
	msgUserCapacity  = "Maximum 2 user accounts allowed."
)

// ContentService is the single source of truth for all entity collections
// and the current principal. Every mutation of a durable collection is
// followed synchronously by exactly one write-through to the document
// store; the internal mutex strictly serializes mutators.
type ContentService struct {
	docs    driven.DocumentStore
	session driven.SessionStore
	alerts  driven.Alerter
	logger  *slog.Logger
	now     func() time.Time

	mu           sync.RWMutex
	current      *model.User
	users        []model.User
	services     []model.Service
	posts        []model.BlogPost
	destinations []model.Destination
	settings     model.SiteSettings
}

// NewContentService hydrates every durable collection from the document
// store, substituting built-in seed data for absent or unparseable
// documents, and restores the session principal if one exists.
func NewContentService(
	ctx context.Context,
	docs driven.DocumentStore,
	session driven.SessionStore,
	alerts driven.Alerter,
	logger *slog.Logger,
) (*ContentService, error) {
	s := &ContentService{
		docs:    docs,
		session: session,
		alerts:  alerts,
		logger:  logger,
		now:     time.Now,
	}

	var err error
	if s.users, err = hydrate(ctx, docs, keyUsers, seed.Users); err != nil {
		return nil, err
	}
	if s.services, err = hydrate(ctx, docs, keyServices, seed.Services); err != nil {
		return nil, err
	}
	if s.posts, err = hydrate(ctx, docs, keyBlog, seed.BlogPosts); err != nil {
		return nil, err
	}
	if s.destinations, err = hydrate(ctx, docs, keyDestinations, seed.Destinations); err != nil {
		return nil, err
	}
	if s.settings, err = hydrate(ctx, docs, keySettings, seed.Settings); err != nil {
		return nil, err
	}

	current, err := session.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session principal: %w", err)
	}
	s.current = current

	return s, nil
}

// hydrate reads one durable document, falling back to seed data when the
// document is absent or does not parse.
func hydrate[T any](ctx context.Context, docs driven.DocumentStore, key string, fallback func() T) (T, error) {
	var v T

	found, err := docs.Read(ctx, key, &v)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("hydrate %s: %w", key, err)
	}
	if !found {
		return fallback(), nil
	}

	return v, nil
}

// persist writes one collection through to the document store. A quota
// refusal produces exactly one user-facing warning and keeps the in-memory
// state as the intended value; any other failure is logged only. Callers
// hold the write lock.
func (s *ContentService) persist(ctx context.Context, key string, doc any) {
	err := s.docs.Write(ctx, key, doc)
	if err == nil {
		return
	}

	if errors.Is(err, driven.ErrQuotaExceeded) {
		s.alerts.Alert(ctx, msgQuotaExceeded)
		return
	}

	s.logger.Error("write-through failed", "key", key, "error", err)
}

// Login finds a user whose username and password match exactly. On match it
// sets the current principal, records it in session storage, and returns
// true. No match returns false and leaves all state untouched.
func (s *ContentService) Login(ctx context.Context, username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			user := u
			s.current = &user
			if err := s.session.Set(ctx, u); err != nil {
				s.logger.Error("store session principal", "error", err)
			}
			return true
		}
	}

	return false
}

// Logout clears the current principal and the session record.
func (s *ContentService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.session.Clear(ctx); err != nil {
		s.logger.Error("clear session principal", "error", err)
	}
}

// CurrentUser returns a copy of the authenticated principal, or nil.
func (s *ContentService) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}

	user := *s.current
	return &user
}

// Users returns a copy of the account collection.
func (s *ContentService) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.users)
}

// AddUser appends a new account. Once two accounts exist the add is a
// silent no-op (capacity policy) with an advisory alert; the returned bool
// reports whether the user was stored.
func (s *ContentService) AddUser(ctx context.Context, user model.User) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) >= maxUsers {
		s.alerts.Alert(ctx, msgUserCapacity)
		return model.User{}, false
	}

	if user.ID == "" {
		user.ID = model.NewID(s.now())
	}

	s.users = append(s.users, user)
	s.persist(ctx, keyUsers, s.users)
	return user, true
}

// UpdateUser replaces the account with a matching id. When the updated id
// is the current principal's, the principal and its session record are
// refreshed in lockstep so the active session never holds stale credentials.
func (s *ContentService) UpdateUser(ctx context.Context, user model.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.users, func(u model.User) bool { return u.ID == user.ID })
	if idx < 0 {
		return false
	}

	s.users[idx] = user

	if s.current != nil && s.current.ID == user.ID {
		refreshed := user
		s.current = &refreshed
		if err := s.session.Set(ctx, user); err != nil {
			s.logger.Error("refresh session principal", "error", err)
		}
	}

	s.persist(ctx, keyUsers, s.users)
	return true
}

// DeleteUser removes the account with the given id. Deleting the last
// remaining or the currently-authenticated account is not blocked, only
// logged: the original system allowed both, so the gap is kept observable
// rather than silently fixed.
func (s *ContentService) DeleteUser(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.users, func(u model.User) bool { return u.ID == id })
	if idx < 0 {
		return false
	}

	if len(s.users) == 1 {
		s.logger.Warn("deleting the last remaining user; nobody will be able to log in", "id", id)
	}
	if s.current != nil && s.current.ID == id {
		s.logger.Warn("deleting the currently-authenticated user; the active session keeps a dangling principal", "id", id)
	}

	s.users = slices.Delete(s.users, idx, idx+1)
	s.persist(ctx, keyUsers, s.users)
	return true
}

// Services returns a copy of the service collection, newest first.
func (s *ContentService) Services() []model.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneServices(s.services)
}

// AddService prepends a new service (newest-first ordering is part of the
// data contract) after normalizing its gallery, and returns the stored
// record.
func (s *ContentService) AddService(ctx context.Context, svc model.Service) model.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	if svc.ID == "" {
		svc.ID = model.NewID(s.now())
	}
	svc.Gallery = slices.Clone(svc.Gallery)
	svc.Features = slices.Clone(svc.Features)
	s.normalizeGallery(ctx, &svc)

	s.services = append([]model.Service{svc}, s.services...)
	s.persist(ctx, keyServices, s.services)
	return svc
}

// UpdateService replaces the service with a matching id after normalizing
// its gallery.
func (s *ContentService) UpdateService(ctx context.Context, svc model.Service) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.services, func(v model.Service) bool { return v.ID == svc.ID })
	if idx < 0 {
		return false
	}

	svc.Gallery = slices.Clone(svc.Gallery)
	svc.Features = slices.Clone(svc.Features)
	s.normalizeGallery(ctx, &svc)

	s.services[idx] = svc
	s.persist(ctx, keyServices, s.services)
	return true
}

// DeleteService removes the service with the given id.
func (s *ContentService) DeleteService(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.services, func(v model.Service) bool { return v.ID == id })
	if idx < 0 {
		return false
	}

	s.services = slices.Delete(s.services, idx, idx+1)
	s.persist(ctx, keyServices, s.services)
	return true
}

// normalizeGallery applies the gallery policy: at most ten images (silent
// cap with an advisory alert) and the primary image kept equal to the first
// gallery entry whenever the gallery is non-empty. Callers hold the write
// lock and own svc.Gallery.
func (s *ContentService) normalizeGallery(ctx context.Context, svc *model.Service) {
	if len(svc.Gallery) > maxGalleryImages {
		svc.Gallery = svc.Gallery[:maxGalleryImages]
		s.alerts.Alert(ctx, msgGalleryFull)
	}

	if len(svc.Gallery) > 0 {
		svc.ImageURL = svc.Gallery[0]
	}
}

// BlogPosts returns a copy of the blog collection, newest first.
func (s *ContentService) BlogPosts() []model.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clonePosts(s.posts)
}

// BlogPost returns a copy of the post with the given id.
func (s *ContentService) BlogPost(id string) (model.BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := slices.IndexFunc(s.posts, func(p model.BlogPost) bool { return p.ID == id })
	if idx < 0 {
		return model.BlogPost{}, false
	}

	post := s.posts[idx]
	post.Tags = slices.Clone(post.Tags)
	return post, true
}

// AddBlogPost prepends a new post and returns the stored record. The date
// is always reset to the current day on save.
func (s *ContentService) AddBlogPost(ctx context.Context, post model.BlogPost) model.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.ID == "" {
		post.ID = model.NewID(s.now())
	}
	post.Date = s.now().Format(model.DateLayout)
	post.Tags = slices.Clone(post.Tags)

	s.posts = append([]model.BlogPost{post}, s.posts...)
	s.persist(ctx, keyBlog, s.posts)
	return post
}

// UpdateBlogPost replaces the post with a matching id, resetting its date
// to the current day.
func (s *ContentService) UpdateBlogPost(ctx context.Context, post model.BlogPost) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.posts, func(p model.BlogPost) bool { return p.ID == post.ID })
	if idx < 0 {
		return false
	}

	post.Date = s.now().Format(model.DateLayout)
	post.Tags = slices.Clone(post.Tags)

	s.posts[idx] = post
	s.persist(ctx, keyBlog, s.posts)
	return true
}

// DeleteBlogPost removes the post with the given id.
func (s *ContentService) DeleteBlogPost(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.posts, func(p model.BlogPost) bool { return p.ID == id })
	if idx < 0 {
		return false
	}

	s.posts = slices.Delete(s.posts, idx, idx+1)
	s.persist(ctx, keyBlog, s.posts)
	return true
}

// Destinations returns a copy of the destination collection.
func (s *ContentService) Destinations() []model.Destination {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.destinations)
}

// AddDestination appends a new destination and returns the stored record.
func (s *ContentService) AddDestination(ctx context.Context, dest model.Destination) model.Destination {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dest.ID == "" {
		dest.ID = model.NewID(s.now())
	}

	s.destinations = append(s.destinations, dest)
	s.persist(ctx, keyDestinations, s.destinations)
	return dest
}

// UpdateDestination replaces the destination with a matching id.
func (s *ContentService) UpdateDestination(ctx context.Context, dest model.Destination) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.destinations, func(d model.Destination) bool { return d.ID == dest.ID })
	if idx < 0 {
		return false
	}

	s.destinations[idx] = dest
	s.persist(ctx, keyDestinations, s.destinations)
	return true
}

// DeleteDestination removes the destination with the given id.
func (s *ContentService) DeleteDestination(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.destinations, func(d model.Destination) bool { return d.ID == id })
	if idx < 0 {
		return false
	}

	s.destinations = slices.Delete(s.destinations, idx, idx+1)
	s.persist(ctx, keyDestinations, s.destinations)
	return true
}

// Settings returns a copy of the singleton site settings.
func (s *ContentService) Settings() model.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// UpdateSettings shallow-merges the set fields of the patch into the
// singleton settings record and returns the merged result.
func (s *ContentService) UpdateSettings(ctx context.Context, patch model.SettingsPatch) model.SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Apply(patch)
	s.persist(ctx, keySettings, s.settings)
	return s.settings
}

func cloneServices(in []model.Service) []model.Service {
	out := slices.Clone(in)
	for i := range out {
		out[i].Gallery = slices.Clone(out[i].Gallery)
		out[i].Features = slices.Clone(out[i].Features)
	}
	return out
}

func clonePosts(in []model.BlogPost) []model.BlogPost {
	out := slices.Clone(in)
	for i := range out {
		out[i].Tags = slices.Clone(out[i].Tags)
	}
	return out
}
