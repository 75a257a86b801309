package domain

// InventoryItem — предмет инвентаря Steam в том виде, в котором его отдаёт
// Steam Community API (asset, склеенный с description). Ядро потребляет
// только предметы с Tradable == 1.
type InventoryItem struct {
	AssetID        string `json:"assetid"`
	ClassID        string `json:"classid"`
	InstanceID     string `json:"instanceid"`
	Amount         string `json:"amount"`
	AppID          int    `json:"appid"`
	ContextID      string `json:"contextid"`
	IconURL        string `json:"icon_url,omitempty"`
	IconURLLarge   string `json:"icon_url_large,omitempty"`
	Name           string `json:"name,omitempty"`
	MarketHashName string `json:"market_hash_name,omitempty"`
	Tradable       int    `json:"tradable"`
	Marketable     int    `json:"marketable"`
}
