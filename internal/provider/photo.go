package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/alexivanou/orbis-api/internal/apperr"
	"github.com/alexivanou/orbis-api/internal/model"
)

const fotoFailureMsg = "Falha ao obter dados do Unsplash."

// PhotoClient calls the Unsplash photo-search endpoint, requesting exactly
// one result.
type PhotoClient struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
}

// NewPhotoClient creates a photo client. A timeout of zero falls back to 10
// seconds.
func NewPhotoClient(baseURL, accessKey string, timeout time.Duration) *PhotoClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &PhotoClient{
		baseURL:    baseURL,
		accessKey:  accessKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// unsplashPayload mirrors the subset of the provider response we consume.
type unsplashPayload struct {
	Results []struct {
		Description    *string `json:"description"`
		AltDescription *string `json:"alt_description"`
		URLs           struct {
			Regular string `json:"regular"`
		} `json:"urls"`
		User struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
	} `json:"results"`
}

// Search returns one photo for the search term, or NotFound when the
// provider has nothing for it.
func (c *PhotoClient) Search(ctx context.Context, query string) (*model.FotoResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("client_id", c.accessKey)
	params.Set("per_page", "1")

	body, err := doGet(ctx, c.httpClient, c.baseURL+"/search/photos?"+params.Encode(), fotoFailureMsg)
	if err != nil {
		return nil, err
	}

	var payload unsplashPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperr.Internal(fotoFailureMsg, err)
	}

	if len(payload.Results) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("Nenhuma foto encontrada para %q.", query))
	}

	photo := payload.Results[0]
	descricao := "Sem descrição"
	if photo.AltDescription != nil && *photo.AltDescription != "" {
		descricao = *photo.AltDescription
	} else if photo.Description != nil && *photo.Description != "" {
		descricao = *photo.Description
	}

	return &model.FotoResponse{
		FotoURL:         photo.URLs.Regular,
		FotoDescricao:   descricao,
		FotografoNome:   photo.User.Name,
		FotografoPerfil: photo.User.Links.HTML,
	}, nil
}
