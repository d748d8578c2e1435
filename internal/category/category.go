// category — статическая таблица связей категорий Pulse.
//
// Категории объявлены кластерами (id кластера -> упорядоченный список
// участников); обратный индекс участник -> кластер строится один раз при
// инициализации. Это устраняет дублирование одинаковых списков по каждому
// ключу при сохранении наблюдаемого поведения исходной таблицы.
package category

import (
	"strings"

	"github.com/segmento-labs/pulse-web/internal/models"
)

// UmbrellaCloud — зонтичный id облачного кластера.
// Все cloud-* категории, кроме него самого, сворачиваются к нему при резолве.
const UmbrellaCloud = "cloud-computing"

const cloudPrefix = "cloud-"

// cluster — именованная группа категорий, показываемых вместе.
type cluster struct {
	id      string
	members []models.CategoryNode
}

var clusters = []cluster{
	{
		id: "data",
		members: []models.CategoryNode{
			{ID: "data-laws", Name: "Data Laws"},
			{ID: "business-analytics", Name: "Business Analytics"},
			{ID: "business-intelligence", Name: "Business Intelligence"},
			{ID: "customer-data-platform", Name: "Customer Data Platform"},
			{ID: "data-centers", Name: "Data Centers"},
			{ID: "data-engineering", Name: "Data Engineering"},
			{ID: "data-governance", Name: "Data Governance"},
			{ID: "data-management", Name: "Data Management"},
			{ID: "data-privacy", Name: "Data Privacy"},
			{ID: "data-security", Name: "Data Security"},
		},
	},
	{
		id: "cloud",
		members: []models.CategoryNode{
			{ID: UmbrellaCloud, Name: "All Cloud"},
			{ID: "cloud-aws", Name: "AWS"},
			{ID: "cloud-gcp", Name: "GCP"},
			{ID: "cloud-azure", Name: "Azure"},
			{ID: "cloud-ibm", Name: "IBM Cloud"},
			{ID: "cloud-oracle", Name: "Oracle"},
			{ID: "cloud-digitalocean", Name: "DigitalOcean"},
			{ID: "cloud-salesforce", Name: "Salesforce"},
			{ID: "cloud-alibaba", Name: "Alibaba Cloud"},
			{ID: "cloud-tencent", Name: "Tencent Cloud"},
			{ID: "cloud-huawei", Name: "Huawei Cloud"},
			{ID: "cloud-cloudflare", Name: "Cloudflare"},
		},
	},
	// Одиночные кластеры — без соседей by design исходной таблицы.
	{id: "ai", members: []models.CategoryNode{{ID: "ai", Name: "AI"}}},
	{id: "medium-article", members: []models.CategoryNode{{ID: "medium-article", Name: "Medium Article"}}},
	{id: "magazines", members: []models.CategoryNode{{ID: "magazines", Name: "Magazines"}}},
}

// byMember — обратный индекс: id категории -> индекс кластера в clusters.
var byMember = buildIndex()

func buildIndex() map[string]int {
	idx := make(map[string]int)
	for i, c := range clusters {
		for _, m := range c.members {
			idx[m.ID] = i
		}
	}
	return idx
}

// Resolve возвращает упорядоченный список соседних категорий для categoryID.
//
// Правила:
//   - cloud-* (кроме зонтичного id) сворачивается к облачному кластеру;
//   - неизвестный id деградирует до одиночного списка {id, id} — без ошибки;
//   - результат всегда непустой; порядок — порядок объявления кластера.
//
// Чистая функция статической таблицы и входа; возвращает копию списка.
func Resolve(categoryID string) []models.CategoryNode {
	lookup := categoryID
	if IsCloudProvider(categoryID) {
		lookup = UmbrellaCloud
	}

	i, ok := byMember[lookup]
	if !ok {
		return []models.CategoryNode{{ID: categoryID, Name: categoryID}}
	}

	out := make([]models.CategoryNode, len(clusters[i].members))
	copy(out, clusters[i].members)
	return out
}

// Group возвращает id кластера для categoryID ("" — если категория неизвестна).
func Group(categoryID string) string {
	lookup := categoryID
	if IsCloudProvider(categoryID) {
		lookup = UmbrellaCloud
	}

	if i, ok := byMember[lookup]; ok {
		return clusters[i].id
	}

	return ""
}

// IsCloudProvider сообщает, является ли id «листом» облачного провайдера
// (cloud-* и не зонтичный id). Производный признак для отрисовки логотипа.
func IsCloudProvider(categoryID string) bool {
	return strings.HasPrefix(categoryID, cloudPrefix) && categoryID != UmbrellaCloud
}

// ProviderName возвращает имя провайдера без префикса cloud-.
func ProviderName(categoryID string) string {
	return strings.TrimPrefix(categoryID, cloudPrefix)
}
