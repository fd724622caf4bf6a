package memory

import (
	"strings"
	"sync"

	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// Asegura que UserRepo implementa repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserRepository.
type UserRepo struct {
	mu    sync.RWMutex
	items []entity.User
	index map[string]int
}

// NewUserRepository construye el adaptador en memoria para usuarios.
func NewUserRepository() *UserRepo {
	return &UserRepo{index: make(map[string]int)}
}

// Create agrega un usuario. CompanyIDs se copia para aislar al caller.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[user.ID]; ok {
		return domain.ErrDuplicate
	}
	u := *user
	u.CompanyIDs = append([]string(nil), user.CompanyIDs...)
	r.index[u.ID] = len(r.items)
	r.items = append(r.items, u)
	return nil
}

// GetByID devuelve una copia del usuario, o nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	return copyUser(r.items[i]), nil
}

// FindByEmail busca por email (case-insensitive), o nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if strings.EqualFold(r.items[i].Email, email) {
			return copyUser(r.items[i]), nil
		}
	}
	return nil, nil
}

// Update reemplaza el usuario almacenado. ErrNotFound si el ID no existe.
func (r *UserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	u := *user
	u.CompanyIDs = append([]string(nil), user.CompanyIDs...)
	r.items[i] = u
	return nil
}

// List devuelve copias en orden de inserción. limit <= 0 = todos.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	page := pageOf(r.items, limit, offset)
	for i, u := range page {
		page[i] = copyUser(*u)
	}
	return page, nil
}

// Delete elimina el usuario. No-op si el ID no existe.
func (r *UserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return nil
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.items); j++ {
		r.index[r.items[j].ID] = j
	}
	return nil
}

func copyUser(u entity.User) *entity.User {
	u.CompanyIDs = append([]string(nil), u.CompanyIDs...)
	return &u
}
