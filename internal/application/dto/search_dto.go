package dto

// SearchHitDTO un resultado de búsqueda global.
type SearchHitDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"` // nombre legible del recurso
	Extra string `json:"extra,omitempty"` // dato secundario: SKU, NIT, oficio…
}

// SearchResultsDTO resultados agrupados por colección.
type SearchResultsDTO struct {
	Query     string         `json:"query"`
	Projects  []SearchHitDTO `json:"projects"`
	Employees []SearchHitDTO `json:"employees"`
	Clients   []SearchHitDTO `json:"clients"`
	Suppliers []SearchHitDTO `json:"suppliers"`
	Inventory []SearchHitDTO `json:"inventory"`
}
