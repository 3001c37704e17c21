package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// resultados por colección en la búsqueda global
const searchPerCollection = 5

// normalizer descompone (NFD), elimina marcas diacríticas y recompone (NFC):
// "Almacén Eléctrico" -> "Almacen Electrico". Las columnas *_normalized de la
// DB se llenan con la misma regla.
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeTerm baja a minúsculas y quita tildes para el índice de búsqueda por prefijo.
func NormalizeTerm(s string) string {
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// SearchUseCase búsqueda global por prefijo sobre las colecciones principales,
// resultados mezclados y agrupados por colección.
type SearchUseCase struct {
	repo repository.SearchRepository
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(repo repository.SearchRepository) *SearchUseCase {
	return &SearchUseCase{repo: repo}
}

// Search normaliza el término y consulta cada colección. Términos de menos de
// dos runas se rechazan con ErrInvalidInput.
func (uc *SearchUseCase) Search(companyID, query string) (*dto.SearchResultsDTO, error) {
	term := NormalizeTerm(query)
	if utf8.RuneCountInString(term) < 2 {
		return nil, domain.ErrInvalidInput
	}

	results := &dto.SearchResultsDTO{
		Query:     query,
		Projects:  []dto.SearchHitDTO{},
		Employees: []dto.SearchHitDTO{},
		Clients:   []dto.SearchHitDTO{},
		Suppliers: []dto.SearchHitDTO{},
		Inventory: []dto.SearchHitDTO{},
	}

	projects, err := uc.repo.SearchProjects(companyID, term, searchPerCollection)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		results.Projects = append(results.Projects, dto.SearchHitDTO{ID: p.ID, Label: p.Name, Extra: p.Status})
	}

	employees, err := uc.repo.SearchEmployees(companyID, term, searchPerCollection)
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		results.Employees = append(results.Employees, dto.SearchHitDTO{ID: e.ID, Label: e.Name, Extra: e.Trade})
	}

	clients, err := uc.repo.SearchClients(companyID, term, searchPerCollection)
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		results.Clients = append(results.Clients, dto.SearchHitDTO{ID: c.ID, Label: c.Name, Extra: c.ContactPerson})
	}

	suppliers, err := uc.repo.SearchSuppliers(companyID, term, searchPerCollection)
	if err != nil {
		return nil, err
	}
	for _, s := range suppliers {
		results.Suppliers = append(results.Suppliers, dto.SearchHitDTO{ID: s.ID, Label: s.Name, Extra: s.NIT})
	}

	items, err := uc.repo.SearchInventoryItems(companyID, term, searchPerCollection)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		results.Inventory = append(results.Inventory, dto.SearchHitDTO{ID: it.ID, Label: it.Name, Extra: it.SKU})
	}

	return results, nil
}
