package catalog

import "github.com/polyglotbot/polyglot/internal/language"

// defaultResponses returns the built-in phrase table used when no response
// file is configured. Every category carries an English entry; the engine
// relies on that for on-demand translation into other languages.
func defaultResponses() map[Category]map[language.Code][]string {
	return map[Category]map[language.Code][]string{
		Greeting: {
			"en": {"Hello!", "Hi there!", "Greetings!", "Welcome!"},
			"es": {"¡Hola!", "¡Saludos!", "¡Bienvenido!"},
			"fr": {"Bonjour!", "Salut!", "Bienvenue!"},
			"de": {"Hallo!", "Guten Tag!", "Willkommen!"},
			"hi": {"नमस्ते!", "हैलो!", "स्वागत है!"},
			"zh": {"你好!", "您好!", "欢迎!"},
			"ja": {"こんにちは!", "やあ!", "ようこそ!"},
			"ru": {"Привет!", "Здравствуйте!", "Добро пожаловать!"},
		},
		Help: {
			"en": {
				"I can chat in over 50 languages using free translation services!\n" +
					"• Type in any language and I'll understand.\n" +
					"• Say 'switch to [language]' to change languages.\n" +
					"• Say 'languages' to see all supported languages.\n" +
					"• Say 'voice on/off' to toggle voice feedback.\n" +
					"• Say 'exit' or 'quit' to end the conversation.",
			},
			"es": {
				"¡Puedo chatear en más de 50 idiomas utilizando servicios de traducción gratuitos!\n" +
					"• Escribe en cualquier idioma y te entenderé.\n" +
					"• Di 'cambiar a [idioma]' para cambiar de idioma.\n" +
					"• Di 'languages' para ver todos los idiomas disponibles.\n" +
					"• Di 'voice on/off' para activar/desactivar la voz.\n" +
					"• Di 'exit' o 'quit' para terminar la conversación.",
			},
		},
		Farewell: {
			"en": {"Goodbye!", "See you later!", "Bye!", "Take care!"},
			"es": {"¡Adiós!", "¡Hasta luego!", "¡Cuídate!"},
			"fr": {"Au revoir!", "À bientôt!", "Prenez soin de vous!"},
			"de": {"Auf Wiedersehen!", "Bis später!", "Tschüss!"},
			"hi": {"अलविदा!", "फिर मिलेंगे!", "अपना ख्याल रखना!"},
		},
		Name: {
			"en": {"I'm PolyglotBot, your polyglot assistant!"},
			"es": {"Soy PolyglotBot, ¡tu asistente políglota!"},
			"de": {"Ich bin PolyglotBot, dein polyglotter Assistent!"},
			"hi": {"मैं पॉलीग्लॉटबॉट हूं, आपका बहुभाषी सहायक!"},
		},
		Fallback: {
			"en": {"I see!", "Interesting!", "Tell me more.", "Go on.", "I understand."},
			"es": {"¡Ya veo!", "¡Interesante!", "Cuéntame más.", "Continúa.", "Entiendo."},
			"fr": {"Je vois!", "Intéressant!", "Dis m'en plus.", "Continue.", "Je comprends."},
			"de": {"Ich verstehe!", "Interessant!", "Erzähl mir mehr.", "Weiter."},
			"hi": {"मैं समझता हूँ!", "दिलचस्प!", "मुझे अधिक बताएं।", "जारी रखें।"},
		},
	}
}
