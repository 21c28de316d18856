package dto

type MovimientoKardexResponse struct {
	ID            uint   `json:"id"`
	ProductoID    uint   `json:"producto_id"`
	Tipo          string `json:"tipo"`
	Cantidad      int    `json:"cantidad"`
	StockAnterior int    `json:"stock_anterior"`
	StockNuevo    int    `json:"stock_nuevo"`
	Motivo        string `json:"motivo"`
	Usuario       string `json:"usuario,omitempty"`
	VentaID       *uint  `json:"venta_id"`
	CompraID      *uint  `json:"compra_id"`
	Fecha         string `json:"fecha"`
}
