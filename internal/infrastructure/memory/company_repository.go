package memory

import (
	"sync"

	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación en memoria del puerto CompanyRepository.
// Mantiene orden de inserción; todo el estado muere con el proceso.
type CompanyRepo struct {
	mu    sync.RWMutex
	items []entity.Company
	index map[string]int // ID -> posición en items
}

// NewCompanyRepository construye el adaptador en memoria para empresas.
func NewCompanyRepository() *CompanyRepo {
	return &CompanyRepo{index: make(map[string]int)}
}

// Create agrega una empresa al final de la colección.
func (r *CompanyRepo) Create(company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[company.ID]; ok {
		return domain.ErrDuplicate
	}
	r.index[company.ID] = len(r.items)
	r.items = append(r.items, *company)
	return nil
}

// GetByID devuelve una copia de la empresa, o nil si no existe.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	c := r.items[i]
	return &c, nil
}

// GetByCNPJ devuelve la primera empresa con ese CNPJ, o nil si no existe.
func (r *CompanyRepo) GetByCNPJ(cnpj string) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].CNPJ == cnpj {
			c := r.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

// Update reemplaza la empresa almacenada. ErrNotFound si el ID no existe.
func (r *CompanyRepo) Update(company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[company.ID]
	if !ok {
		return domain.ErrNotFound
	}
	r.items[i] = *company
	return nil
}

// List devuelve copias en orden de inserción. limit <= 0 = todos.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return pageOf(r.items, limit, offset), nil
}

// Delete elimina la empresa. No-op si el ID no existe.
func (r *CompanyRepo) Delete(id string) error {
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
