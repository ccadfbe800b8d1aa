package model

// CriarContinenteRequest is the body of POST /continentes.
type CriarContinenteRequest struct {
	Nome           string     `json:"nome"`
	Descricao      string     `json:"descricao"`
	AreaKm2        *float64   `json:"area_km2"`
	NumeroPaises   *int64     `json:"numero_paises"`
	PopulacaoTotal NullBigInt `json:"populacao_total"`
}

// AtualizarContinenteRequest is the body of PUT /continentes/{id}. Only
// fields present in the JSON are applied.
type AtualizarContinenteRequest struct {
	Nome           *string  `json:"nome"`
	Descricao      *string  `json:"descricao"`
	AreaKm2        *float64 `json:"area_km2"`
	NumeroPaises   *int64   `json:"numero_paises"`
	PopulacaoTotal *BigInt  `json:"populacao_total"`
}

// CriarPaisRequest is the body of POST /paises.
type CriarPaisRequest struct {
	IDContinente    int64   `json:"id_continente"`
	Nome            string  `json:"nome"`
	PopulacaoTotal  *BigInt `json:"populacao_total"`
	IdiomaOficial   string  `json:"idioma_oficial"`
	Moeda           string  `json:"moeda"`
	FotoURL         *string `json:"foto_url"`
	FotoDescricao   *string `json:"foto_descricao"`
	FotografoNome   *string `json:"fotografo_nome"`
	FotografoPerfil *string `json:"fotografo_perfil"`
}

// AtualizarPaisRequest is the body of PUT /paises/{id}.
type AtualizarPaisRequest struct {
	IDContinente    *int64  `json:"id_continente"`
	Nome            *string `json:"nome"`
	PopulacaoTotal  *BigInt `json:"populacao_total"`
	IdiomaOficial   *string `json:"idioma_oficial"`
	Moeda           *string `json:"moeda"`
	FotoURL         *string `json:"foto_url"`
	FotoDescricao   *string `json:"foto_descricao"`
	FotografoNome   *string `json:"fotografo_nome"`
	FotografoPerfil *string `json:"fotografo_perfil"`
}

// CriarCidadeRequest is the body of POST /cidades.
type CriarCidadeRequest struct {
	IDPais          int64    `json:"id_pais"`
	Nome            string   `json:"nome"`
	PopulacaoTotal  *BigInt  `json:"populacao_total"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	FotoURL         *string  `json:"foto_url"`
	FotoDescricao   *string  `json:"foto_descricao"`
	FotografoNome   *string  `json:"fotografo_nome"`
	FotografoPerfil *string  `json:"fotografo_perfil"`
	ClimaDescricao  *string  `json:"clima_descricao"`
	Temperatura     *float64 `json:"temperatura"`
	Umidade         *float64 `json:"umidade"`
	VentoVelocidade *float64 `json:"vento_velocidade"`
}

// AtualizarCidadeRequest is the body of PUT /cidades/{id}.
type AtualizarCidadeRequest struct {
	IDPais          *int64   `json:"id_pais"`
	Nome            *string  `json:"nome"`
	PopulacaoTotal  *BigInt  `json:"populacao_total"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	FotoURL         *string  `json:"foto_url"`
	FotoDescricao   *string  `json:"foto_descricao"`
	FotografoNome   *string  `json:"fotografo_nome"`
	FotografoPerfil *string  `json:"fotografo_perfil"`
	ClimaDescricao  *string  `json:"clima_descricao"`
	Temperatura     *float64 `json:"temperatura"`
	Umidade         *float64 `json:"umidade"`
	VentoVelocidade *float64 `json:"vento_velocidade"`
}

// CadastroRequest is the body of POST /cadastro.
type CadastroRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse carries the minimal identity returned on login. No token or
// session is issued.
type LoginResponse struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// ClimaResponse is the normalized weather snapshot returned by GET /clima.
type ClimaResponse struct {
	ClimaDescricao  string  `json:"clima_descricao"`
	Temperatura     float64 `json:"temperatura"`
	SensacaoTermica float64 `json:"sensacao_termica"`
	TempMin         float64 `json:"temp_min"`
	TempMax         float64 `json:"temp_max"`
	Pressao         float64 `json:"pressao"`
	Umidade         float64 `json:"umidade"`
	VentoVelocidade float64 `json:"vento_velocidade"`
	Local           string  `json:"local"`
}

// FotoResponse is the normalized photo record returned by GET /fotos.
type FotoResponse struct {
	FotoURL         string `json:"foto_url"`
	FotoDescricao   string `json:"foto_descricao"`
	FotografoNome   string `json:"fotografo_nome"`
	FotografoPerfil string `json:"fotografo_perfil"`
}
