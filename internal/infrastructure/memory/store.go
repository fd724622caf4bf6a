// Package memory implementa los puertos de persistencia del dominio sobre
// colecciones en memoria. Es el único backend del sistema: no hay base de
// datos ni durabilidad, el estado vive y muere con el proceso.
//
// Cada repositorio mantiene orden de inserción (slice) más un índice por ID,
// protegidos por RWMutex. Los métodos devuelven copias para que los callers
// no puedan mutar el estado interno por fuera de Update.
package memory

// pageOf devuelve copias de una ventana [offset, offset+limit) de la
// colección. limit <= 0 significa "sin límite" (contrato in-process: listar
// todo); offset fuera de rango devuelve vacío.
func pageOf[T any](items []T, limit, offset int) []*T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []*T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*T, 0, end-offset)
	for i := offset; i < end; i++ {
		c := items[i]
		out = append(out, &c)
	}
	return out
}
