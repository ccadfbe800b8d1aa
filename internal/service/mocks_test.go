package service

import (
	"context"

	"github.com/alexivanou/orbis-api/internal/model"
	"github.com/alexivanou/orbis-api/internal/repository"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockContinenteRepository implements repository.ContinenteRepository
type MockContinenteRepository struct {
	mock.Mock
}

func (m *MockContinenteRepository) Insert(ctx context.Context, c *model.Continente) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContinenteRepository) List(ctx context.Context) ([]model.Continente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Continente), args.Error(1)
}

func (m *MockContinenteRepository) GetByID(ctx context.Context, id int64) (*model.Continente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Continente), args.Error(1)
}

func (m *MockContinenteRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContinenteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContinenteRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockPaisRepository implements repository.PaisRepository
type MockPaisRepository struct {
	mock.Mock
}

func (m *MockPaisRepository) Insert(ctx context.Context, p *model.Pais) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaisRepository) List(ctx context.Context) ([]model.PaisDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PaisDetail), args.Error(1)
}

func (m *MockPaisRepository) GetDetail(ctx context.Context, id int64) (*model.PaisDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaisDetail), args.Error(1)
}

func (m *MockPaisRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaisRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaisRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockCidadeRepository implements repository.CidadeRepository
type MockCidadeRepository struct {
	mock.Mock
}

func (m *MockCidadeRepository) Insert(ctx context.Context, c *model.Cidade) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCidadeRepository) List(ctx context.Context) ([]model.CidadeDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CidadeDetail), args.Error(1)
}

func (m *MockCidadeRepository) GetDetail(ctx context.Context, id int64) (*model.CidadeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CidadeDetail), args.Error(1)
}

func (m *MockCidadeRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCidadeRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCidadeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUsuarioRepository implements repository.UsuarioRepository
type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) Insert(ctx context.Context, u *model.Usuario) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUsuarioRepository) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Usuario), args.Error(1)
}

// MockWeatherProvider implements WeatherProvider
type MockWeatherProvider struct {
	mock.Mock
}

func (m *MockWeatherProvider) CurrentByCoords(ctx context.Context, lat, lon string) (*model.ClimaResponse, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClimaResponse), args.Error(1)
}

// MockPhotoProvider implements PhotoProvider
type MockPhotoProvider struct {
	mock.Mock
}

func (m *MockPhotoProvider) Search(ctx context.Context, query string) (*model.FotoResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FotoResponse), args.Error(1)
}

type testMocks struct {
	continente *MockContinenteRepository
	pais       *MockPaisRepository
	cidade     *MockCidadeRepository
	usuario    *MockUsuarioRepository
	weather    *MockWeatherProvider
	photos     *MockPhotoProvider
}

func newTestService(withProviders bool) (*Service, *testMocks) {
	m := &testMocks{
		continente: new(MockContinenteRepository),
		pais:       new(MockPaisRepository),
		cidade:     new(MockCidadeRepository),
		usuario:    new(MockUsuarioRepository),
		weather:    new(MockWeatherProvider),
		photos:     new(MockPhotoProvider),
	}
	repos := &repository.Container{
		Continente: m.continente,
		Pais:       m.pais,
		Cidade:     m.cidade,
		Usuario:    m.usuario,
	}
	var weather WeatherProvider
	var photos PhotoProvider
	if withProviders {
		weather = m.weather
		photos = m.photos
	}
	return NewService(repos, weather, photos, zap.NewNop()), m
}
