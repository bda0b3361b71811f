package i18n

import "golang.org/x/text/language"

var messages = map[language.Tag]map[Key]string{
	language.English: {
		Today:          "Today's Flow",
		Upcoming:       "Future Flow",
		Week:           "Week",
		Month:          "Month",
		Year:           "Year",
		Rhythm:         "Your Rhythm",
		AlarmTitle:     "Alarm Clock",
		SettingsTitle:  "Settings",
		Now:            "Now",
		RecoveryMode:   "Recovery Mode",
		WindDown:       "Wind-down",
		AddPoint:       "Focus Point",
		Placeholder:    "What are we doing next?",
		Weightless:     "Weightless",
		Leisure:        "Pure leisure only.",
		RecoveryActive: "Neural Recovery Active",
		Save:           "Save Changes",
		LanguageLabel:  "Language",
		SoundLabel:     "Wake-up Sound",
		EnableAlarm:    "Enable Alarm",
		MoveTask:       "Move to",
		CarriedForward: "Carried Forward",
		NoUpcoming:     "No upcoming tasks scheduled.",
		UpcomingTasks:  "Upcoming Tasks",
		FlowStart:      "Good morning. Your flow starts now.",
		EnterThread:    "Enter Thread",
		Snooze:         "5 more minutes",
		RecurrenceKey:  "Repeat",
		OverCapacity:   "Over capacity: %d/%d",
		SleepTooShort:  "Sleep must last at least 7 hours.",
		SpanTooShort:   "Your active day must last at least 7 hours.",

		"morning":   "Morning",
		"afternoon": "Afternoon",
		"evening":   "Evening",
		"night":     "Night",

		"greeting.morning":   "Good Morning",
		"greeting.afternoon": "Good Afternoon",
		"greeting.evening":   "Good Evening",
		"greeting.night":     "Good Night",

		"rec.none":       "Once",
		"rec.daily":      "Every Day",
		"rec.weekly":     "Every Week",
		"rec.monthly":    "Every Month",
		"rec.all-blocks": "3x / Day",

		"sound.forest": "Forest",
		"sound.sea":    "Sea Waves",
		"sound.water":  "Stream",
		"sound.birds":  "Morning Birds",
		"sound.rain":   "Soft Rain",
		"sound.wind":   "Mountain Wind",
		"sound.zen":    "Zen Bowl",
	},
	language.Russian: {
		Today:          "Ваш поток",
		Upcoming:       "Будущий поток",
		Week:           "Неделя",
		Month:          "Месяц",
		Year:           "Год",
		Rhythm:         "Ваш ритм",
		AlarmTitle:     "Будильник",
		SettingsTitle:  "Настройки",
		Now:            "Сейчас",
		RecoveryMode:   "Режим восстановления",
		WindDown:       "Подготовка ко сну",
		AddPoint:       "Точка фокуса",
		Placeholder:    "Что планируем дальше?",
		Weightless:     "Налегке",
		Leisure:        "Только отдых.",
		RecoveryActive: "Восстановление нейронов",
		Save:           "Сохранить",
		LanguageLabel:  "Язык",
		SoundLabel:     "Звук пробуждения",
		EnableAlarm:    "Включить будильник",
		MoveTask:       "Переместить в",
		CarriedForward: "Перенесено",
		NoUpcoming:     "Будущих задач не запланировано.",
		UpcomingTasks:  "Предстоящие задачи",
		FlowStart:      "Доброе утро. Ваш поток начинается сейчас.",
		EnterThread:    "Войти в поток",
		Snooze:         "Еще 5 минут",
		RecurrenceKey:  "Повтор",
		OverCapacity:   "Перегрузка: %d/%d",
		SleepTooShort:  "Сон должен длиться не менее 7 часов.",
		SpanTooShort:   "Активный день должен длиться не менее 7 часов.",

		"morning":   "Утро",
		"afternoon": "День",
		"evening":   "Вечер",
		"night":     "Ночь",

		"greeting.morning":   "Доброе утро",
		"greeting.afternoon": "Добрый день",
		"greeting.evening":   "Добрый вечер",
		"greeting.night":     "Доброй ночи",

		"rec.none":       "Один раз",
		"rec.daily":      "Ежедневно",
		"rec.weekly":     "Еженедельно",
		"rec.monthly":    "Ежемесячно",
		"rec.all-blocks": "3 раза в день",

		"sound.forest": "Лес",
		"sound.sea":    "Морские волны",
		"sound.water":  "Ручей",
		"sound.birds":  "Утренние птицы",
		"sound.rain":   "Тихий дождь",
		"sound.wind":   "Горный ветер",
		"sound.zen":    "Дзен-чаша",
	},
	language.Spanish: {
		Today:          "Tu Flujo",
		Upcoming:       "Flujo Futuro",
		Week:           "Semana",
		Month:          "Mes",
		Year:           "Año",
		Rhythm:         "Tu Ritmo",
		AlarmTitle:     "Reloj Alarma",
		SettingsTitle:  "Ajustes",
		Now:            "Ahora",
		RecoveryMode:   "Modo Recuperación",
		WindDown:       "Relajación",
		AddPoint:       "Punto de Enfoque",
		Placeholder:    "¿Qué haremos después?",
		Weightless:     "Ligero",
		Leisure:        "Puro ocio solamente.",
		RecoveryActive: "Recuperación Neural Activa",
		Save:           "Guardar Cambios",
		LanguageLabel:  "Idioma",
		SoundLabel:     "Sonido Despertar",
		EnableAlarm:    "Activar Alarma",
		MoveTask:       "Mover a",
		CarriedForward: "Continuado",
		NoUpcoming:     "No hay tareas programadas.",
		UpcomingTasks:  "Tareas Próximas",
		FlowStart:      "Buenos días. Tu flujo comienza ahora.",
		EnterThread:    "Entrar al Flujo",
		Snooze:         "5 minutos más",
		RecurrenceKey:  "Repetir",
		OverCapacity:   "Sobrecarga: %d/%d",
		SleepTooShort:  "El sueño debe durar al menos 7 horas.",
		SpanTooShort:   "Tu día activo debe durar al menos 7 horas.",

		"morning":   "Mañana",
		"afternoon": "Tarde",
		"evening":   "Noche",
		"night":     "Noche",

		"greeting.morning":   "Buenos Días",
		"greeting.afternoon": "Buenas Tardes",
		"greeting.evening":   "Buenas Noches",
		"greeting.night":     "Buenas Noches",

		"rec.none":       "Una vez",
		"rec.daily":      "Diario",
		"rec.weekly":     "Semanal",
		"rec.monthly":    "Mensual",
		"rec.all-blocks": "3x / Día",

		"sound.forest": "Bosque",
		"sound.sea":    "Olas del mar",
		"sound.water":  "Arroyo",
		"sound.birds":  "Pájaros matutinos",
		"sound.rain":   "Lluvia suave",
		"sound.wind":   "Viento de montaña",
		"sound.zen":    "Cuenco Zen",
	},
}

var tips = map[string][]string{
	"en": {
		"A 48-hour disconnect increases your creativity by 60% for the week ahead.",
		"Cognitive performance drops by 25% after 6 days of continuous work without a full day off.",
		"Active rest, like walking in nature, accelerates neural recovery more than passive rest.",
		"Your brain consolidates complex problem-solving strategies during periods of 'Free Flow' leisure.",
		"Recovery isn't just absence of work; it's the presence of restorative activities.",
	},
	"ru": {
		"48-часовое отключение повышает вашу креативность на 60% на предстоящую неделю.",
		"Когнитивные показатели падают на 25% после 6 дней непрерывной работы без полноценного выходного.",
		"Активный отдых, например, прогулка на природе, ускоряет восстановление нейронов эффективнее пассивного отдыха.",
		"Ваш мозг закрепляет стратегии решения сложных задач в периоды свободного досуга.",
		"Восстановление это не просто отсутствие работы, это наличие восстанавливающих занятий.",
	},
	"es": {
		"Desconectarse por 48 horas aumenta tu creatividad en un 60% para la semana siguiente.",
		"El rendimiento cognitivo cae un 25% después de 6 días de trabajo continuo sin un día libre.",
		"El descanso activo, como caminar en la naturaleza, acelera la recuperación neural más que el descanso pasivo.",
		"Tu cerebro consolida estrategias complejas de resolución de problemas durante los periodos de ocio 'Free Flow'.",
		"Recuperación no es solo ausencia de trabajo; es la presencia de actividades reparadoras.",
	},
}
