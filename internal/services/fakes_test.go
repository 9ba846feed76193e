package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"booking_backend/internal/models"
	"booking_backend/internal/repositories"
)

type fakeAppointmentRepo struct {
	mu      sync.Mutex
	nextID  int64
	rows    []models.Appointment
	failAll error
	// afterList runs once the snapshot is taken, before ListAppointments returns.
	afterList func()
}

func (r *fakeAppointmentRepo) CreateAppointment(ctx context.Context, a *models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	r.nextID++
	a.ID = r.nextID
	r.rows = append(r.rows, *a)
	return a, nil
}

func (r *fakeAppointmentRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	if r.failAll != nil {
		r.mu.Unlock()
		return nil, r.failAll
	}
	snapshot := append([]models.Appointment{}, r.rows...)
	hook := r.afterList
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	return snapshot, nil
}

func (r *fakeAppointmentRepo) DeleteAppointment(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.rows {
		if a.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeAppointmentRepo) CountAppointments(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows), nil
}

type fakeAuthRepo struct {
	users     map[string]models.AdminUser
	createErr error
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{users: map[string]models.AdminUser{}}
}

func (r *fakeAuthRepo) CreateAdminUser(ctx context.Context, username, hash string) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	if _, ok := r.users[username]; ok {
		return 0, repositories.ErrDuplicateKey
	}
	id := int64(len(r.users) + 1)
	r.users[username] = models.AdminUser{ID: id, Username: username, PasswordHash: hash}
	return id, nil
}

func (r *fakeAuthRepo) FindAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

type memCache struct {
	entries map[string][]byte
	gets    int
	hits    int
	incrs   int
	err     error
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.gets++
	if c.err != nil {
		return nil, false, c.err
	}
	v, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return v, ok, nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.err != nil {
		return c.err
	}
	c.entries[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	if c.err != nil {
		return c.err
	}
	delete(c.entries, key)
	return nil
}

func (c *memCache) Incr(ctx context.Context, key string) (int64, error) {
	c.incrs++
	if c.err != nil {
		return 0, c.err
	}
	n, _ := strconv.ParseInt(string(c.entries[key]), 10, 64)
	n++
	c.entries[key] = []byte(strconv.FormatInt(n, 10))
	return n, nil
}

type recordingNotifier struct {
	sent []models.Appointment
	err  error
}

func (n *recordingNotifier) AppointmentBooked(ctx context.Context, a models.Appointment) error {
	n.sent = append(n.sent, a)
	return n.err
}

var errBoom = errors.New("boom")
