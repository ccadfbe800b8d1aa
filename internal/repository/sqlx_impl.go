package repository

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	"github.com/alexivanou/orbis-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// buildUpdate assembles a partial UPDATE statement from the provided fields.
// Keys are sorted so the generated SQL is deterministic.
func buildUpdate(table string, fields map[string]interface{}, id int64) (string, []interface{}) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys))
	args := make([]interface{}, 0, len(keys)+1)
	for _, k := range keys {
		sets = append(sets, k+" = ?")
		args = append(args, fields[k])
	}
	args = append(args, id)

	return "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?", args
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

func exists(ctx context.Context, db *sqlx.DB, table string, id int64) (bool, error) {
	var found int64
	q := db.Rebind("SELECT id FROM " + table + " WHERE id = ?")
	if err := db.GetContext(ctx, &found, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// --- Continente ---

type continenteRepository struct {
	db *sqlx.DB
}

func (r *continenteRepository) Insert(ctx context.Context, c *model.Continente) (int64, error) {
	q := r.db.Rebind(`
		INSERT INTO continente (nome, descricao, area_km2, numero_paises, populacao_total)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)
	var id int64
	err := r.db.QueryRowxContext(ctx, q,
		c.Nome, c.Descricao, c.AreaKm2, c.NumeroPaises, c.PopulacaoTotal,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *continenteRepository) List(ctx context.Context) ([]model.Continente, error) {
	continentes := make([]model.Continente, 0)
	q := "SELECT * FROM continente ORDER BY nome ASC"
	if err := r.db.SelectContext(ctx, &continentes, q); err != nil {
		return nil, err
	}
	return continentes, nil
}

func (r *continenteRepository) GetByID(ctx context.Context, id int64) (*model.Continente, error) {
	var c model.Continente
	q := r.db.Rebind("SELECT * FROM continente WHERE id = ?")
	if err := r.db.GetContext(ctx, &c, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *continenteRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	q, args := buildUpdate("continente", fields, id)
	res, err := r.db.ExecContext(ctx, r.db.Rebind(q), args...)
	if err != nil {
		return 0, err
	}
	return rowsAffected(res)
}

func (r *continenteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	q := r.db.Rebind("DELETE FROM continente WHERE id = ?")
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return rowsAffected(res)
}

func (r *continenteRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "continente", id)
}

// --- Pais ---

type paisRepository struct {
	db *sqlx.DB
}

// paisRow is the flat shape of the pais/continente JOIN.
type paisRow struct {
	model.Pais
	ContinenteNome string `db:"continente_nome"`
}

func (row paisRow) toDetail() model.PaisDetail {
	return model.PaisDetail{
		Pais: row.Pais,
		Continente: model.ContinenteRef{
			ID:   row.IDContinente,
			Nome: row.ContinenteNome,
		},
	}
}

const paisSelect = `
	SELECT p.*, c.nome AS continente_nome
	FROM pais p
	JOIN continente c ON p.id_continente = c.id
`

func (r *paisRepository) Insert(ctx context.Context, p *model.Pais) (int64, error) {
	q := r.db.Rebind(`
		INSERT INTO pais (id_continente, nome, populacao_total, idioma_oficial, moeda,
			foto_url, foto_descricao, fotografo_nome, fotografo_perfil)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	var id int64
	err := r.db.QueryRowxContext(ctx, q,
		p.IDContinente, p.Nome, p.PopulacaoTotal, p.IdiomaOficial, p.Moeda,
		p.FotoURL, p.FotoDescricao, p.FotografoNome, p.FotografoPerfil,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *paisRepository) List(ctx context.Context) ([]model.PaisDetail, error) {
	var rows []paisRow
	if err := r.db.SelectContext(ctx, &rows, paisSelect+" ORDER BY p.nome ASC"); err != nil {
		return nil, err
	}
	paises := make([]model.PaisDetail, 0, len(rows))
	for _, row := range rows {
		paises = append(paises, row.toDetail())
	}
	return paises, nil
}

func (r *paisRepository) GetDetail(ctx context.Context, id int64) (*model.PaisDetail, error) {
	var row paisRow
	q := r.db.Rebind(paisSelect + " WHERE p.id = ?")
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	detail := row.toDetail()
	return &detail, nil
}

func (r *paisRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	q, args := buildUpdate("pais", fields, id)
	res, err := r.db.ExecContext(ctx, r.db.Rebind(q), args...)
	if err != nil {
		return 0, err
	}
	return rowsAffected(res)
}

func (r *paisRepository) Delete(ctx context.Context, id int64) (int64, error) {
	q := r.db.Rebind("DELETE FROM pais WHERE id = ?")
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return rowsAffected(res)
}

func (r *paisRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "pais", id)
}

// --- Cidade ---

type cidadeRepository struct {
	db *sqlx.DB
}

// cidadeRow is the flat shape of the cidade/pais/continente double JOIN.
type cidadeRow struct {
	model.Cidade
	PaisNome          string `db:"pais_nome"`
	PaisIdiomaOficial string `db:"pais_idioma_oficial"`
	PaisMoeda         string `db:"pais_moeda"`
	PaisIDContinente  int64  `db:"pais_id_continente"`
	ContinenteNome    string `db:"continente_nome"`
}

func (row cidadeRow) toDetail() model.CidadeDetail {
	return model.CidadeDetail{
		Cidade: row.Cidade,
		Pais: model.PaisRef{
			ID:            row.IDPais,
			Nome:          row.PaisNome,
			IdiomaOficial: row.PaisIdiomaOficial,
			Moeda:         row.PaisMoeda,
			IDContinente:  row.PaisIDContinente,
			Continente: model.ContinenteRef{
				ID:   row.PaisIDContinente,
				Nome: row.ContinenteNome,
			},
		},
	}
}

const cidadeSelect = `
	SELECT c.*,
		p.nome AS pais_nome,
		p.idioma_oficial AS pais_idioma_oficial,
		p.moeda AS pais_moeda,
		p.id_continente AS pais_id_continente,
		cont.nome AS continente_nome
	FROM cidade c
	JOIN pais p ON c.id_pais = p.id
	JOIN continente cont ON p.id_continente = cont.id
`

func (r *cidadeRepository) Insert(ctx context.Context, c *model.Cidade) (int64, error) {
	q := r.db.Rebind(`
		INSERT INTO cidade (id_pais, nome, populacao_total, latitude, longitude,
			foto_url, foto_descricao, fotografo_nome, fotografo_perfil,
			clima_descricao, temperatura, umidade, vento_velocidade)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	var id int64
	err := r.db.QueryRowxContext(ctx, q,
		c.IDPais, c.Nome, c.PopulacaoTotal, c.Latitude, c.Longitude,
		c.FotoURL, c.FotoDescricao, c.FotografoNome, c.FotografoPerfil,
		c.ClimaDescricao, c.Temperatura, c.Umidade, c.VentoVelocidade,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *cidadeRepository) List(ctx context.Context) ([]model.CidadeDetail, error) {
	var rows []cidadeRow
	if err := r.db.SelectContext(ctx, &rows, cidadeSelect+" ORDER BY c.nome ASC"); err != nil {
		return nil, err
	}
	cidades := make([]model.CidadeDetail, 0, len(rows))
	for _, row := range rows {
		cidades = append(cidades, row.toDetail())
	}
	return cidades, nil
}

func (r *cidadeRepository) GetDetail(ctx context.Context, id int64) (*model.CidadeDetail, error) {
	var row cidadeRow
	q := r.db.Rebind(cidadeSelect + " WHERE c.id = ?")
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	detail := row.toDetail()
	return &detail, nil
}

func (r *cidadeRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	q, args := buildUpdate("cidade", fields, id)
	res, err := r.db.ExecContext(ctx, r.db.Rebind(q), args...)
	if err != nil {
		return 0, err
	}
	return rowsAffected(res)
}

func (r *cidadeRepository) Delete(ctx context.Context, id int64) (int64, error) {
	q := r.db.Rebind("DELETE FROM cidade WHERE id = ?")
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return rowsAffected(res)
}

func (r *cidadeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "cidade", id)
}

// --- Usuario ---

type usuarioRepository struct {
	db *sqlx.DB
}

func (r *usuarioRepository) Insert(ctx context.Context, u *model.Usuario) (int64, error) {
	q := r.db.Rebind(`
		INSERT INTO usuario (nome, email, senha_hash)
		VALUES (?, ?, ?)
		RETURNING id
	`)
	var id int64
	if err := r.db.QueryRowxContext(ctx, q, u.Nome, u.Email, u.SenhaHash).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *usuarioRepository) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	q := r.db.Rebind("SELECT * FROM usuario WHERE email = ?")
	if err := r.db.GetContext(ctx, &u, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
