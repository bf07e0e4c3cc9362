package models

type Event struct {
	ID          string `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion,omitempty"`
	ImageURL    string `json:"imagen_url,omitempty"`
	Date        string `json:"fecha"`
	Place       string `json:"lugar,omitempty"`
	Status      Status `json:"estado"`
}

// Chamber (cámara) groups the commerces of a zone and owns their free quota.
type Chamber struct {
	ID        string `json:"id"`
	Name      string `json:"nombre"`
	Zone      string `json:"zona"`
	FreeLimit int    `json:"limite_gratuitos"`
}

type ChamberInput struct {
	Name      string `json:"nombre"`
	Zone      string `json:"zona"`
	FreeLimit int    `json:"limite_gratuitos"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Municipality struct {
	ID          string      `json:"id"`
	Name        string      `json:"nombre"`
	Coordinates Coordinates `json:"coordenadas"`
	CoverImage  string      `json:"imagen_portada,omitempty"`
}
