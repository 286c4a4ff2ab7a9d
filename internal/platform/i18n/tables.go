package i18n

// Key/value tables for the two site languages. Keys follow the
// section.name convention used across the storefront.
var tables = map[string]map[string]string{
	"en": {
		"nav.home":     "Home",
		"nav.tents":    "Tents",
		"nav.whyUs":    "Why Us",
		"nav.location": "Find Us",
		"nav.contact":  "Contact",
		"rental":       "Rental",

		"hero.title":    "TENDAS DE MOZAMBIQUE",
		"hero.subtitle": "HIGH QUALITY TARPAULINS, TENTS AND MUCH MORE, MADE FOR THE AFRICAN SUN",
		"hero.cta":      "Explore Tents",

		"filter.allCategories": "All Categories",
		"filter.filterBy":      "Filter by Category",

		"products.title":           "Premium Outdoor Products",
		"products.subtitle":        "Explore our range of high-quality products",
		"products.viewDetails":     "View Details",
		"products.requestQuote":    "Request Quote",
		"products.ourProducts":     "Our Products",
		"products.downloadCatalog": "Download Tent Catalog",

		"product.backToHome":          "Back to Home",
		"product.productNotFound":     "Product Not Found",
		"product.productNotFoundDesc": "The product you are looking for does not exist or has been removed.",
		"product.weight":              "Weight",
		"product.seasonality":         "Seasonality",
		"product.capacity":            "Capacity",
		"product.productDescription":  "Product Description",
		"product.relatedProducts":     "Related Products",
		"product.photos":              "photos",

		"contact.title":          "Request a Quote",
		"contact.name":           "Name",
		"contact.email":          "Email",
		"contact.message":        "Message",
		"contact.send":           "Send Message",
		"contact.sending":        "Sending...",
		"contact.thankYou":       "Thank You!",
		"contact.successMessage": "Your message has been sent successfully. We will get back to you soon.",

		"rental.title":             "Equipment Rental",
		"rental.catalog":           "Rental Catalog",
		"rental.requestQuote":      "Request Quote",
		"rental.retry":             "Try Again",
		"rental.contactForPricing": "Contact us for pricing and availability",

		"rentalRequest.equipmentType":       "EQUIPMENT TYPE",
		"rentalRequest.rentalDuration":      "RENTAL DURATION",
		"rentalRequest.phoneNumber":         "PHONE NUMBER",
		"rentalRequest.processing":          "Processing...",
		"rentalRequest.requestReceived":     "Request Received!",
		"rentalRequest.contactShortly":      "We'll contact you shortly with rental information and availability.",
		"rentalRequest.quickRentalInquiry":  "Quick Rental Inquiry",
		"rentalRequest.selectEquipmentType": "Select equipment type",
		"rentalRequest.selectDuration":      "Select duration",
	},
	"pt": {
		"nav.home":     "Início",
		"nav.tents":    "Tendas",
		"nav.whyUs":    "Porquê Nós",
		"nav.location": "Encontre-nos",
		"nav.contact":  "Contacto",
		"rental":       "Aluguer",

		"hero.title":    "TENDAS DE MOÇAMBIQUE",
		"hero.subtitle": "LONAS, TENDAS E MUITO MAIS DE ALTA QUALIDADE, FEITAS PARA O SOL AFRICANO",
		"hero.cta":      "Explorar Tendas",

		"filter.allCategories": "Todas as Categorias",
		"filter.filterBy":      "Filtrar por Categoria",

		"products.title":           "Produtos Premium para Exterior",
		"products.subtitle":        "Explore a nossa gama de produtos de alta qualidade",
		"products.viewDetails":     "Ver Detalhes",
		"products.requestQuote":    "Solicitar Orçamento",
		"products.ourProducts":     "Nossos Produtos",
		"products.downloadCatalog": "Baixar Catálogo de Tendas",

		"product.backToHome":          "Voltar para Início",
		"product.productNotFound":     "Produto Não Encontrado",
		"product.productNotFoundDesc": "O produto que procura não existe ou foi removido.",
		"product.weight":              "Peso",
		"product.seasonality":         "Sazonalidade",
		"product.capacity":            "Capacidade",
		"product.productDescription":  "Descrição do Produto",
		"product.relatedProducts":     "Produtos Relacionados",
		"product.photos":              "fotos",

		"contact.title":          "Solicitar Orçamento",
		"contact.name":           "Nome",
		"contact.email":          "Email",
		"contact.message":        "Mensagem",
		"contact.send":           "Enviar Mensagem",
		"contact.sending":        "Enviando...",
		"contact.thankYou":       "Obrigado!",
		"contact.successMessage": "A sua mensagem foi enviada com sucesso. Entraremos em contacto em breve.",

		"rental.title":             "Aluguer de Equipamentos",
		"rental.catalog":           "Catálogo de Aluguer",
		"rental.requestQuote":      "Solicitar Orçamento",
		"rental.retry":             "Tentar Novamente",
		"rental.contactForPricing": "Contacte-nos para preços e disponibilidade",

		"rentalRequest.equipmentType":       "TIPO DE EQUIPAMENTO",
		"rentalRequest.rentalDuration":      "DURAÇÃO DO ALUGUER",
		"rentalRequest.phoneNumber":         "NÚMERO DE TELEFONE",
		"rentalRequest.processing":          "Processando...",
		"rentalRequest.requestReceived":     "Solicitação Recebida!",
		"rentalRequest.contactShortly":      "Entraremos em contato em breve com informações de aluguer e disponibilidade.",
		"rentalRequest.quickRentalInquiry":  "Consulta Rápida de Aluguer",
		"rentalRequest.selectEquipmentType": "Selecione o tipo de equipamento",
		"rentalRequest.selectDuration":      "Selecione a duração",
	},
}
