package model

// Continente represents a row of the continente table.
type Continente struct {
	ID             int64      `db:"id" json:"id"`
	Nome           string     `db:"nome" json:"nome"`
	Descricao      string     `db:"descricao" json:"descricao"`
	AreaKm2        *float64   `db:"area_km2" json:"area_km2"`
	NumeroPaises   *int64     `db:"numero_paises" json:"numero_paises"`
	PopulacaoTotal NullBigInt `db:"populacao_total" json:"populacao_total"`
}

// Pais represents a row of the pais table.
type Pais struct {
	ID              int64   `db:"id" json:"id"`
	IDContinente    int64   `db:"id_continente" json:"id_continente"`
	Nome            string  `db:"nome" json:"nome"`
	PopulacaoTotal  BigInt  `db:"populacao_total" json:"populacao_total"`
	IdiomaOficial   string  `db:"idioma_oficial" json:"idioma_oficial"`
	Moeda           string  `db:"moeda" json:"moeda"`
	FotoURL         *string `db:"foto_url" json:"foto_url"`
	FotoDescricao   *string `db:"foto_descricao" json:"foto_descricao"`
	FotografoNome   *string `db:"fotografo_nome" json:"fotografo_nome"`
	FotografoPerfil *string `db:"fotografo_perfil" json:"fotografo_perfil"`
}

// Cidade represents a row of the cidade table. The clima_* columns hold the
// last weather snapshot a client chose to persist.
type Cidade struct {
	ID              int64    `db:"id" json:"id"`
	IDPais          int64    `db:"id_pais" json:"id_pais"`
	Nome            string   `db:"nome" json:"nome"`
	PopulacaoTotal  BigInt   `db:"populacao_total" json:"populacao_total"`
	Latitude        float64  `db:"latitude" json:"latitude"`
	Longitude       float64  `db:"longitude" json:"longitude"`
	FotoURL         *string  `db:"foto_url" json:"foto_url"`
	FotoDescricao   *string  `db:"foto_descricao" json:"foto_descricao"`
	FotografoNome   *string  `db:"fotografo_nome" json:"fotografo_nome"`
	FotografoPerfil *string  `db:"fotografo_perfil" json:"fotografo_perfil"`
	ClimaDescricao  *string  `db:"clima_descricao" json:"clima_descricao"`
	Temperatura     *float64 `db:"temperatura" json:"temperatura"`
	Umidade         *float64 `db:"umidade" json:"umidade"`
	VentoVelocidade *float64 `db:"vento_velocidade" json:"vento_velocidade"`
}

// Usuario represents a row of the usuario table. The hash never leaves the
// server.
type Usuario struct {
	ID        int64  `db:"id" json:"id"`
	Nome      string `db:"nome" json:"nome"`
	Email     string `db:"email" json:"email"`
	SenhaHash string `db:"senha_hash" json:"-"`
}

// ContinenteRef is the parent reference embedded in nested responses.
type ContinenteRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// PaisRef is the parent reference embedded in city responses, carrying the
// continent one level deeper.
type PaisRef struct {
	ID            int64         `json:"id"`
	Nome          string        `json:"nome"`
	IdiomaOficial string        `json:"idioma_oficial"`
	Moeda         string        `json:"moeda"`
	IDContinente  int64         `json:"id_continente"`
	Continente    ContinenteRef `json:"continente"`
}

// PaisDetail is a country with its continent embedded.
type PaisDetail struct {
	Pais
	Continente ContinenteRef `json:"continente"`
}

// CidadeDetail is a city with its country and continent embedded.
type CidadeDetail struct {
	Cidade
	Pais PaisRef `json:"pais"`
}
