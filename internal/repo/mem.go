package repo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"fitvibe/internal/apperr"
	"fitvibe/internal/models"
)

// Mem is an in-memory Store used by the test suites. InTx takes a full
// copy of the state, runs fn against the copy, and swaps it in only on
// success, which gives the same all-or-nothing visibility the postgres
// store gets from its transactions.
type Mem struct {
	mu sync.RWMutex
	st memState
}

type memCartEntry struct {
	productID string
	quantity  int
}

type memState struct {
	users          map[string]models.User
	products       map[string]models.Product
	carts          map[string][]memCartEntry
	orders         []models.Order
	challenges     map[string]models.Challenge
	userChallenges map[string][]models.UserChallenge
	activities     map[string]models.Activity
}

func NewMem() *Mem {
	return &Mem{st: memState{
		users:          map[string]models.User{},
		products:       map[string]models.Product{},
		carts:          map[string][]memCartEntry{},
		challenges:     map[string]models.Challenge{},
		userChallenges: map[string][]models.UserChallenge{},
		activities:     map[string]models.Activity{},
	}}
}

func (s memState) clone() memState {
	c := memState{
		users:          make(map[string]models.User, len(s.users)),
		products:       make(map[string]models.Product, len(s.products)),
		carts:          make(map[string][]memCartEntry, len(s.carts)),
		orders:         append([]models.Order(nil), s.orders...),
		challenges:     make(map[string]models.Challenge, len(s.challenges)),
		userChallenges: make(map[string][]models.UserChallenge, len(s.userChallenges)),
		activities:     make(map[string]models.Activity, len(s.activities)),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.carts {
		c.carts[k] = append([]memCartEntry(nil), v...)
	}
	for k, v := range s.challenges {
		c.challenges[k] = v
	}
	for k, v := range s.userChallenges {
		c.userChallenges[k] = append([]models.UserChallenge(nil), v...)
	}
	for k, v := range s.activities {
		c.activities[k] = v
	}
	return c
}

func (m *Mem) Users() Users           { return &memUsers{m} }
func (m *Mem) Products() Products     { return &memProducts{m} }
func (m *Mem) Carts() Carts           { return &memCarts{m} }
func (m *Mem) Orders() Orders         { return &memOrders{m} }
func (m *Mem) Challenges() Challenges { return &memChallenges{m} }
func (m *Mem) Activities() Activities { return &memActivities{m} }

func (m *Mem) InTx(ctx context.Context, fn func(Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &Mem{st: m.st.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	m.st = tx.st
	return nil
}

// Seed helpers keep the test fixtures terse.

func (m *Mem) SeedUser(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.users[u.ID] = u
}

func (m *Mem) SeedProduct(p models.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.products[p.ID] = p
}

func (m *Mem) DeleteProduct(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.st.products, id)
}

func (m *Mem) SeedChallenge(c models.Challenge) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.challenges[c.ID] = c
}

func (m *Mem) SeedUserChallenge(userID string, uc models.UserChallenge) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.userChallenges[userID] = append(m.st.userChallenges[userID], uc)
}

func (m *Mem) SeedActivity(a models.Activity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.activities[strings.ToLower(a.Slug)] = a
}

type memUsers struct{ m *Mem }

func (r *memUsers) Create(ctx context.Context, u *models.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, existing := range r.m.st.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return apperr.ErrDuplicateEmail
		}
	}
	cp := *u
	cp.Email = strings.ToLower(cp.Email)
	r.m.st.users[cp.ID] = cp
	return nil
}

func (r *memUsers) ByEmail(ctx context.Context, email string) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, u := range r.m.st.users {
		if strings.EqualFold(u.Email, email) {
			cp := u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *memUsers) ByID(ctx context.Context, id string) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	u, ok := r.m.st.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (r *memUsers) ChallengesFor(ctx context.Context, userID string) ([]models.UserChallenge, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := []models.UserChallenge{}
	for _, uc := range r.m.st.userChallenges[userID] {
		if c, ok := r.m.st.challenges[uc.ChallengeID]; ok {
			cp := c
			uc.Challenge = &cp
		} else {
			uc.Challenge = nil
		}
		out = append(out, uc)
	}
	return out, nil
}

type memProducts struct{ m *Mem }

func (r *memProducts) List(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := []models.Product{}
	for _, p := range r.m.st.products {
		if f.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Query)) {
			continue
		}
		if f.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(f.Category)) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	switch f.Sort {
	case "price_asc":
		sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price_desc":
		sort.Slice(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

func (r *memProducts) ByID(ctx context.Context, id string) (*models.Product, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	p, ok := r.m.st.products[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := p
	return &cp, nil
}

type memCarts struct{ m *Mem }

func (r *memCarts) Items(ctx context.Context, userID string) ([]models.CartItem, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := []models.CartItem{}
	for _, e := range r.m.st.carts[userID] {
		it := models.CartItem{ProductID: e.productID, Quantity: e.quantity}
		if p, ok := r.m.st.products[e.productID]; ok {
			cp := p
			it.Product = &cp
		}
		out = append(out, it)
	}
	return out, nil
}

func (r *memCarts) Add(ctx context.Context, userID, productID string, quantity int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	entries := r.m.st.carts[userID]
	for i := range entries {
		if entries[i].productID == productID {
			entries[i].quantity += quantity
			return nil
		}
	}
	r.m.st.carts[userID] = append(entries, memCartEntry{productID: productID, quantity: quantity})
	return nil
}

func (r *memCarts) Remove(ctx context.Context, userID, productID string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	entries := r.m.st.carts[userID]
	for i := range entries {
		if entries[i].productID == productID {
			r.m.st.carts[userID] = append(entries[:i:i], entries[i+1:]...)
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (r *memCarts) Clear(ctx context.Context, userID string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	delete(r.m.st.carts, userID)
	return nil
}

type memOrders struct{ m *Mem }

func (r *memOrders) Create(ctx context.Context, o *models.Order) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	cp := *o
	cp.Items = append([]models.OrderItem(nil), o.Items...)
	r.m.st.orders = append(r.m.st.orders, cp)
	return nil
}

func (r *memOrders) ByUser(ctx context.Context, userID string) ([]models.Order, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := []models.Order{}
	// Insertion order reversed = newest first.
	for i := len(r.m.st.orders) - 1; i >= 0; i-- {
		o := r.m.st.orders[i]
		if o.UserID != userID {
			continue
		}
		o.Items = append([]models.OrderItem(nil), o.Items...)
		for j := range o.Items {
			if p, ok := r.m.st.products[o.Items[j].ProductID]; ok {
				o.Items[j].ImageURL = p.ImageURL
			}
		}
		out = append(out, o)
	}
	return out, nil
}

type memChallenges struct{ m *Mem }

func (r *memChallenges) List(ctx context.Context) ([]models.Challenge, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := []models.Challenge{}
	for _, c := range r.m.st.challenges {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *memChallenges) ByID(ctx context.Context, id string) (*models.Challenge, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	c, ok := r.m.st.challenges[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := c
	return &cp, nil
}

type memActivities struct{ m *Mem }

func (r *memActivities) BySlug(ctx context.Context, slug string) (*models.Activity, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	a, ok := r.m.st.activities[strings.ToLower(slug)]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := a
	return &cp, nil
}
