// Package seeder loads a JSON seed file describing the continent → country →
// city hierarchy, used to populate an empty database.
package seeder

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexivanou/orbis-api/internal/model"
)

// SeedCidade is a city entry of the seed file.
type SeedCidade struct {
	Nome           string       `json:"nome"`
	PopulacaoTotal model.BigInt `json:"populacao_total"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
}

// SeedPais is a country entry with its cities.
type SeedPais struct {
	Nome           string       `json:"nome"`
	PopulacaoTotal model.BigInt `json:"populacao_total"`
	IdiomaOficial  string       `json:"idioma_oficial"`
	Moeda          string       `json:"moeda"`
	Cidades        []SeedCidade `json:"cidades"`
}

// SeedContinente is a continent entry with its countries.
type SeedContinente struct {
	Nome           string           `json:"nome"`
	Descricao      string           `json:"descricao"`
	AreaKm2        *float64         `json:"area_km2"`
	NumeroPaises   *int64           `json:"numero_paises"`
	PopulacaoTotal model.NullBigInt `json:"populacao_total"`
	Paises         []SeedPais       `json:"paises"`
}

// SeedFile is the root of the seed document.
type SeedFile struct {
	Continentes []SeedContinente `json:"continentes"`
}

// Parse reads and validates a seed file.
func Parse(path string) (*SeedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	var seed SeedFile
	if err := json.NewDecoder(f).Decode(&seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for _, cont := range seed.Continentes {
		if cont.Nome == "" || cont.Descricao == "" {
			return nil, fmt.Errorf("continent entry missing nome or descricao")
		}
		for _, pais := range cont.Paises {
			if pais.Nome == "" || pais.IdiomaOficial == "" || pais.Moeda == "" {
				return nil, fmt.Errorf("country entry %q missing required fields", pais.Nome)
			}
			for _, cidade := range pais.Cidades {
				if cidade.Nome == "" {
					return nil, fmt.Errorf("city entry under %q missing nome", pais.Nome)
				}
			}
		}
	}

	return &seed, nil
}
