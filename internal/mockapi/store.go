package mockapi

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmpt/absensi/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	errNotFound = errors.New("not found")
	errInUse    = errors.New("still referenced")
)

type userRecord struct {
	user         models.User
	passwordHash []byte
}

// Store keeps the mock backend state in memory. All methods are safe for concurrent use
// and return copies, so callers may modify what they get back.
type Store struct {
	mu          sync.RWMutex
	users       []userRecord
	revoked     map[string]time.Time
	attendances []models.Attendance
	products    []models.Product
	brands      []models.Brand
	categories  []models.Category
	orders      []models.Order
	assets      map[string][]byte
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		revoked: make(map[string]time.Time),
		assets:  make(map[string][]byte),
	}
}

// AddUser registers a user with a bcrypt hash of password
func (s *Store) AddUser(user models.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.users, func(r userRecord) bool { return r.user.Username == user.Username }) {
		return fmt.Errorf("user %s already exists", user.Username)
	}
	s.users = append(s.users, userRecord{user: user, passwordHash: hash})
	return nil
}

// Authenticate returns the user matching the credentials
func (s *Store) Authenticate(username, password string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.users {
		if !strings.EqualFold(r.user.Username, username) {
			continue
		}
		if bcrypt.CompareHashAndPassword(r.passwordHash, []byte(password)) != nil {
			return models.User{}, false
		}
		return r.user, true
	}
	return models.User{}, false
}

// User finds a user by id
func (s *Store) User(id int64) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.users {
		if r.user.ID == id {
			return r.user, true
		}
	}
	return models.User{}, false
}

// Revoke marks a token id as logged out until it would have expired anyway
func (s *Store) Revoke(tokenID string, until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, id)
		}
	}
	s.revoked[tokenID] = until
}

// IsRevoked implements middleware.RevocationChecker
func (s *Store) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.revoked[tokenID]
	return ok
}

// AddAttendance appends an attendance record
func (s *Store) AddAttendance(a models.Attendance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendances = append(s.attendances, a)
}

// Attendances returns the records of a user, newest first
func (s *Store) Attendances(userID int64) []models.Attendance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Attendance
	for i := len(s.attendances) - 1; i >= 0; i-- {
		if s.attendances[i].UserID == userID {
			out = append(out, s.attendances[i])
		}
	}
	return out
}

// HasAttendance reports whether the user already recorded kind on the day of t
func (s *Store) HasAttendance(userID int64, kind string, t time.Time) bool {
	day := models.FormatDate(t)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.ContainsFunc(s.attendances, func(a models.Attendance) bool {
		return a.UserID == userID && a.Type == kind && models.FormatDate(a.CreatedAt) == day
	})
}

// Products returns the products whose name contains search, newest first
func (s *Store) Products(search string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search = strings.ToLower(search)
	var out []models.Product
	for i := len(s.products) - 1; i >= 0; i-- {
		if search == "" || strings.Contains(strings.ToLower(s.products[i].Name), search) {
			out = append(out, s.products[i])
		}
	}
	return out
}

// Product finds a product by id
func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.products, func(p models.Product) bool { return p.ID == id })
}

// SaveProduct inserts or replaces a product
func (s *Store) SaveProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = upsert(s.products, p, func(o models.Product) bool { return o.ID == p.ID })
}

// DeleteProduct removes a product
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(&s.products, func(p models.Product) bool { return p.ID == id })
}

// Brands returns every brand
func (s *Store) Brands() []models.Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.brands)
}

// Brand finds a brand by id
func (s *Store) Brand(id string) (models.Brand, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.brands, func(b models.Brand) bool { return b.ID == id })
}

// SaveBrand inserts or replaces a brand
func (s *Store) SaveBrand(b models.Brand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brands = upsert(s.brands, b, func(o models.Brand) bool { return o.ID == b.ID })
}

// DeleteBrand removes a brand that no product uses
func (s *Store) DeleteBrand(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.products, func(p models.Product) bool { return p.BrandID == id }) {
		return errInUse
	}
	return remove(&s.brands, func(b models.Brand) bool { return b.ID == id })
}

// Categories returns every category
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// Category finds a category by id
func (s *Store) Category(id string) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.categories, func(c models.Category) bool { return c.ID == id })
}

// SaveCategory inserts or replaces a category
func (s *Store) SaveCategory(c models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = upsert(s.categories, c, func(o models.Category) bool { return o.ID == c.ID })
}

// DeleteCategory removes a category that no product uses
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.products, func(p models.Product) bool { return p.CategoryID == id }) {
		return errInUse
	}
	return remove(&s.categories, func(c models.Category) bool { return c.ID == id })
}

// Orders returns orders filtered by status and customer store name, newest first
func (s *Store) Orders(status, search string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search = strings.ToLower(search)
	var out []models.Order
	for i := len(s.orders) - 1; i >= 0; i-- {
		o := s.orders[i]
		if status != "" && o.Status != status {
			continue
		}
		if search != "" && (o.Customer == nil || !strings.Contains(strings.ToLower(o.Customer.StoreName), search)) {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	return out
}

// Order finds an order by id
func (s *Store) Order(id int64) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := find(s.orders, func(o models.Order) bool { return o.ID == id })
	return cloneOrder(o), ok
}

// UpdateOrder applies fn to an order under the write lock and returns the result.
// Returning an error from fn leaves the order unchanged.
func (s *Store) UpdateOrder(id int64, fn func(o *models.Order) error) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.orders, func(o models.Order) bool { return o.ID == id })
	if i < 0 {
		return models.Order{}, errNotFound
	}

	o := cloneOrder(s.orders[i])
	if err := fn(&o); err != nil {
		return models.Order{}, err
	}
	s.orders[i] = o
	return cloneOrder(o), nil
}

// AddOrder inserts an order
func (s *Store) AddOrder(o models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
}

// PutAsset stores uploaded bytes under path
func (s *Store) PutAsset(path string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets[path] = data
}

// Asset returns the bytes stored under path
func (s *Store) Asset(path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.assets[path]
	return data, ok
}

func cloneOrder(o models.Order) models.Order {
	o.Items = slices.Clone(o.Items)
	o.Payments = slices.Clone(o.Payments)
	return o
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	if i := slices.IndexFunc(items, match); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

func upsert[T any](items []T, item T, match func(T) bool) []T {
	if i := slices.IndexFunc(items, match); i >= 0 {
		items[i] = item
		return items
	}
	return append(items, item)
}

func remove[T any](items *[]T, match func(T) bool) error {
	i := slices.IndexFunc(*items, match)
	if i < 0 {
		return errNotFound
	}
	*items = slices.Delete(*items, i, i+1)
	return nil
}
