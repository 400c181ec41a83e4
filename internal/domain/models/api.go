package models

// DashboardStats mirrors the aggregate payload served by GET /api/dashboard/stats.
type DashboardStats struct {
	TotalItens int       `json:"total_itens"`
	Alertas    int       `json:"alertas"`
	MovHoje    int       `json:"mov_hoje"`
	Chart      ChartData `json:"chart"`
}

// ChartData carries the positionally aligned weekly movement series. The
// entrada and saida slices always have the same length as labels.
type ChartData struct {
	Labels  []string  `json:"labels"`
	Entrada []float64 `json:"entrada"`
	Saida   []float64 `json:"saida"`
}

// StockRow is one line of GET /api/estoque. AlertaBaixo is computed by the
// backend (saldo below estoque_minimo); the client never re-derives it.
type StockRow struct {
	Cod           string  `json:"cod"`
	Descricao     string  `json:"descricao"`
	Unid          string  `json:"unid"`
	EstoqueMinimo float64 `json:"estoque_minimo"`
	Saldo         float64 `json:"saldo"`
	AlertaBaixo   bool    `json:"alerta_baixo"`
}

// Movement is one stock movement record. Direction is carried by which list
// of Movements it belongs to, not by a field.
type Movement struct {
	Data       string  `json:"data"`
	Cod        string  `json:"cod"`
	Quantidade float64 `json:"quantidade"`
}

// Movements is the pre-grouped payload of GET /api/movimentacoes.
type Movements struct {
	Entradas []Movement `json:"entradas"`
	Saidas   []Movement `json:"saidas"`
}

// User mirrors one row of GET /api/users.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}
