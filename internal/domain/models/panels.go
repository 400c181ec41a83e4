package models

// Stock row badge labels shown on the stock panel and in exports.
const (
	SituacaoBaixo = "BAIXO"
	SituacaoOK    = "OK"
)

// StatsPanel holds the three scalar summary cards.
type StatsPanel struct {
	TotalItens int `json:"total_itens"`
	Alertas    int `json:"alertas"`
	MovHoje    int `json:"mov_hoje"`
}

// StockPanel is the rendered stock table: the filtered rows plus the search
// term they were filtered with.
type StockPanel struct {
	Termo string         `json:"termo"`
	Rows  []StockRowView `json:"rows"`
}

// StockRowView is one rendered stock table row.
type StockRowView struct {
	Cod           string  `json:"cod"`
	Descricao     string  `json:"descricao"`
	Unid          string  `json:"unid"`
	EstoqueMinimo float64 `json:"estoque_minimo"`
	Saldo         float64 `json:"saldo"`
	Baixo         bool    `json:"baixo"`
	Situacao      string  `json:"situacao"`
}

// HistoryPanel is the rendered movement history, split the way the backend
// groups it.
type HistoryPanel struct {
	Entradas []MovementView `json:"entradas"`
	Saidas   []MovementView `json:"saidas"`
}

// MovementView is one rendered history row. Data is reformatted to DD/MM.
type MovementView struct {
	Data       string  `json:"data"`
	Cod        string  `json:"cod"`
	Quantidade float64 `json:"quantidade"`
	Entrada    bool    `json:"entrada"`
}

// UsersPanel is the rendered user table.
type UsersPanel struct {
	Rows []UserView `json:"rows"`
}

// UserView is one rendered user row. PodeExcluir is false for the protected
// "admin" account, for which no delete action may ever be offered.
type UserView struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Admin       bool   `json:"admin"`
	PodeExcluir bool   `json:"pode_excluir"`
}
