package locale

// Translations carries the localized strings the API surfaces to end users.
// Only messages the service itself emits live here; page copy stays client-side.
type Translations struct {
	Locale      string `json:"locale"`
	NoResults   string `json:"noResults"`
	APIError    string `json:"apiError"`
	NoQuery     string `json:"noQuery"`
	MockNotice  string `json:"mockNotice"`
	StatsHeader string `json:"statsHeader"`
}

var translations = map[string]Translations{
	"en": {
		Locale:      "en",
		NoResults:   "No sold listings found for this product",
		APIError:    "Could not reach the marketplace. Please try again.",
		NoQuery:     "Enter a product name or barcode to search",
		MockNotice:  "Demo mode - connect eBay API for real data",
		StatsHeader: "items analyzed",
	},
	"pt-BR": {
		Locale:      "pt-BR",
		NoResults:   "Nenhuma venda encontrada para este produto",
		APIError:    "Nao foi possivel acessar o marketplace. Tente novamente.",
		NoQuery:     "Digite um nome de produto ou codigo de barras",
		MockNotice:  "Modo demo - conecte a API do eBay para dados reais",
		StatsHeader: "itens analisados",
	},
	"es": {
		Locale:      "es",
		NoResults:   "No se encontraron ventas para este producto",
		APIError:    "No se pudo acceder al marketplace. Intentalo de nuevo.",
		NoQuery:     "Escribe un nombre de producto o codigo de barras",
		MockNotice:  "Modo demo - conecta la API de eBay para datos reales",
		StatsHeader: "articulos analizados",
	},
	"fr": {
		Locale:      "fr",
		NoResults:   "Aucune vente trouvee pour ce produit",
		APIError:    "Impossible de joindre la marketplace. Reessayez.",
		NoQuery:     "Saisissez un nom de produit ou un code-barres",
		MockNotice:  "Mode demo - connectez l'API eBay pour des donnees reelles",
		StatsHeader: "articles analyses",
	},
	"it": {
		Locale:      "it",
		NoResults:   "Nessuna vendita trovata per questo prodotto",
		APIError:    "Impossibile raggiungere il marketplace. Riprova.",
		NoQuery:     "Inserisci un nome prodotto o un codice a barre",
		MockNotice:  "Modalita demo - collega l'API eBay per dati reali",
		StatsHeader: "articoli analizzati",
	},
}

// ForLocale returns the string table for a locale, defaulting to English.
func ForLocale(locale string) Translations {
	if t, ok := translations[locale]; ok {
		return t
	}
	return translations["en"]
}

// Locales lists the supported locale codes in display order.
func Locales() []string {
	return []string{"en", "pt-BR", "es", "fr", "it"}
}
