package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// UI matnlari. Kontent API dan keladigan matnlar bu yerda emas.
var uiStrings = map[string]Text{
	"navbar.home":    {UZ: "Bosh sahifa", RU: "Главная", EN: "Home"},
	"navbar.about":   {UZ: "Biz haqimizda", RU: "О нас", EN: "About"},
	"navbar.service": {UZ: "Xizmatlar", RU: "Услуги", EN: "Services"},
	"navbar.blog":    {UZ: "Blog", RU: "Блог", EN: "Blog"},
	"navbar.news":    {UZ: "Yangiliklar", RU: "Новости", EN: "News"},
	"navbar.contact": {UZ: "Bog'lanish", RU: "Связаться", EN: "Contact us"},

	"pageNames.home":     {UZ: "Bosh sahifa", RU: "Главная", EN: "Home"},
	"pageNames.blog":     {UZ: "Blog", RU: "Блог", EN: "Blog"},
	"pageNames.news":     {UZ: "Yangiliklar", RU: "Новости", EN: "News"},
	"pageNames.services": {UZ: "Xizmatlar", RU: "Услуги", EN: "Services"},
	"pageNames.about":    {UZ: "Biz haqimizda", RU: "О нас", EN: "About"},

	"global_title.contact":        {UZ: "Biz bilan bog'laning", RU: "Свяжитесь с нами", EN: "Contact us"},
	"global_title.phone":          {UZ: "Telefon", RU: "Телефон", EN: "Phone"},
	"global_title.email":          {UZ: "Elektron pochta", RU: "Эл. почта", EN: "Email"},
	"global_title.telegram":       {UZ: "Telegram orqali yozing", RU: "Напишите в Telegram", EN: "Write on Telegram"},
	"global_title.whatsup":        {UZ: "WhatsApp orqali yozing", RU: "Напишите в WhatsApp", EN: "Write on WhatsApp"},
	"global_title.patients":       {UZ: "Bemorlar fikrlari", RU: "Отзывы пациентов", EN: "Patient reviews"},
	"global_title.patients_click": {UZ: "Fikr qoldirish", RU: "Оставить отзыв", EN: "Leave a review"},
	"global_title.info":           {UZ: "Ko'p beriladigan savollar", RU: "Частые вопросы", EN: "Frequently asked questions"},
	"global_title.ask":            {UZ: "Savol berish", RU: "Задать вопрос", EN: "Ask a question"},
	"global_title.videos":         {UZ: "Videolar", RU: "Видео", EN: "Videos"},
	"global_title.cards":          {UZ: "Ommabop xizmatlar", RU: "Популярные услуги", EN: "Popular services"},
	"global_title.button":         {UZ: "Batafsil", RU: "Подробнее", EN: "Learn more"},
	"global_title.statistics":     {UZ: "Raqamlarda", RU: "В цифрах", EN: "In numbers"},
	"global_title.related":        {UZ: "Boshqa maqolalar", RU: "Другие статьи", EN: "More articles"},
	"global_title.share":          {UZ: "Ulashish", RU: "Поделиться", EN: "Share"},

	"bio.title":  {UZ: "Biografiya", RU: "Биография", EN: "Biography"},
	"bio.button": {UZ: "Batafsil", RU: "Подробнее", EN: "Read more"},
	"bio.years":  {UZ: "yillik tajriba", RU: "лет опыта", EN: "years of experience"},

	"form.required":         {UZ: "Barcha maydonlarni to'ldiring", RU: "Заполните все поля", EN: "Please fill in all fields"},
	"form.success":          {UZ: "Muvaffaqiyatli yuborildi!", RU: "Успешно отправлено!", EN: "Sent successfully!"},
	"form.error":            {UZ: "Xatolik yuz berdi. Qaytadan urinib ko'ring", RU: "Произошла ошибка. Попробуйте ещё раз", EN: "Something went wrong. Please try again"},
	"form.phoneError":       {UZ: "Telefon raqami noto'g'ri formatda", RU: "Неверный формат номера телефона", EN: "Invalid phone number format"},
	"form.image_size_error": {UZ: "Rasm hajmi 3MB dan oshmasligi kerak!", RU: "Размер изображения не должен превышать 3МБ!", EN: "Image must not exceed 3MB!"},
	"form.rate_limited":     {UZ: "Juda ko'p so'rov. Birozdan so'ng urinib ko'ring", RU: "Слишком много запросов. Попробуйте позже", EN: "Too many requests. Please try later"},
	"form.name":             {UZ: "Ismingiz", RU: "Ваше имя", EN: "Your name"},
	"form.phone":            {UZ: "Telefon raqamingiz", RU: "Ваш телефон", EN: "Your phone"},
	"form.message":          {UZ: "Xabaringiz", RU: "Ваше сообщение", EN: "Your message"},
	"form.question":         {UZ: "Savolingizni yozing", RU: "Напишите ваш вопрос", EN: "Write your question"},
	"form.review":           {UZ: "Fikringizni qoldiring!", RU: "Оставьте свой отзыв!", EN: "Leave your feedback!"},
	"form.upload_image":     {UZ: "Rasm yuklash", RU: "Загрузить фото", EN: "Upload image"},
	"form.send":             {UZ: "Yuborish", RU: "Отправить", EN: "Send"},
	"form.loading":          {UZ: "Yuborilmoqda...", RU: "Отправка...", EN: "Sending..."},
	"form.close":            {UZ: "Yopish", RU: "Закрыть", EN: "Close"},

	"footer.date":            {UZ: "Ish vaqti", RU: "Время работы", EN: "Working hours"},
	"footer.month":           {UZ: "Dushanba - Juma", RU: "Понедельник - Пятница", EN: "Monday - Friday"},
	"footer.hours":           {UZ: "Shanba", RU: "Суббота", EN: "Saturday"},
	"footer.menu":            {UZ: "Menyu", RU: "Меню", EN: "Menu"},
	"footer.address.address": {UZ: "Manzil", RU: "Адрес", EN: "Address"},
	"footer.address.desc":    {UZ: "Barcha huquqlar himoyalangan", RU: "Все права защищены", EN: "All rights reserved"},
	"footer.address.missing": {UZ: "Manzil mavjud emas", RU: "Адрес недоступен", EN: "Address unavailable"},

	"loader.title": {UZ: "Yuklanmoqda...", RU: "Загрузка...", EN: "Loading..."},
	"notFound":     {UZ: "Sahifa topilmadi", RU: "Страница не найдена", EN: "Page not found"},
}

var uiCatalog = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range uiStrings {
		for _, l := range All() {
			// SetString faqat noto'g'ri tag uchun xato qaytaradi
			_ = b.SetString(l.Tag(), key, text.In(l))
		}
	}
	return b
}

// Printer returns a message printer for l backed by the UI catalog.
func Printer(l Locale) *message.Printer {
	return message.NewPrinter(l.Tag(), message.Catalog(uiCatalog))
}

// T translates a UI string key. Unknown keys are returned unchanged.
func T(l Locale, key string) string {
	return Printer(l).Sprintf(key)
}
