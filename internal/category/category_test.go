package category

import (
	"testing"

	"github.com/segmento-labs/pulse-web/internal/models"
	"github.com/stretchr/testify/require"
)

// Тесты статической таблицы категорий.
//
// Покрытие:
//  - неизвестный id -> одиночный список {id, id}, без ошибки и не пустой;
//  - cloud-X (X != computing) -> тот же список, что и у зонтичного id;
//  - рефлексивность: каждый участник кластера входит в свой же список;
//  - симметрия внутри кластера: у всех участников одинаковый список;
//  - порядок участников стабилен (порядок объявления);
//  - Resolve возвращает копию (мутация результата не портит таблицу);
//  - IsCloudProvider / ProviderName / Group.

func TestResolve_UnknownID_SingletonFallback(t *testing.T) {
	t.Parallel()

	got := Resolve("quantum-banana")
	require.Equal(t, []models.CategoryNode{{ID: "quantum-banana", Name: "quantum-banana"}}, got)
}

func TestResolve_CloudProviders_FoldToUmbrella(t *testing.T) {
	t.Parallel()

	umbrella := Resolve(UmbrellaCloud)
	require.NotEmpty(t, umbrella)
	require.Equal(t, UmbrellaCloud, umbrella[0].ID)

	providers := []string{
		"cloud-aws", "cloud-gcp", "cloud-azure", "cloud-ibm", "cloud-oracle",
		"cloud-digitalocean", "cloud-salesforce", "cloud-alibaba",
		"cloud-tencent", "cloud-huawei", "cloud-cloudflare",
	}
	for _, p := range providers {
		require.Equal(t, umbrella, Resolve(p), "provider %s must share the umbrella list", p)
	}
}

func TestResolve_Reflexive_EveryMemberInOwnGroup(t *testing.T) {
	t.Parallel()

	ids := []string{
		"data-security", "data-governance", "data-privacy", "data-engineering",
		"business-analytics", "business-intelligence", "customer-data-platform",
		"data-centers", "data-management", "data-laws",
		UmbrellaCloud, "ai", "medium-article", "magazines",
	}

	for _, id := range ids {
		siblings := Resolve(id)
		require.NotEmpty(t, siblings)

		found := false
		for _, s := range siblings {
			if s.ID == id {
				found = true
				break
			}
		}
		require.True(t, found, "%s must appear in its own sibling list", id)
	}
}

func TestResolve_DataCluster_SymmetricAndOrdered(t *testing.T) {
	t.Parallel()

	base := Resolve("data-security")
	require.Len(t, base, 10)
	// Порядок объявления: data-laws первым, data-security последним.
	require.Equal(t, "data-laws", base[0].ID)
	require.Equal(t, "data-security", base[9].ID)

	for _, id := range []string{
		"data-governance", "data-privacy", "data-engineering",
		"business-analytics", "business-intelligence",
		"customer-data-platform", "data-centers", "data-management", "data-laws",
	} {
		require.Equal(t, base, Resolve(id), "data cluster must be symmetric for %s", id)
	}
}

func TestResolve_Singletons(t *testing.T) {
	t.Parallel()

	require.Equal(t, []models.CategoryNode{{ID: "ai", Name: "AI"}}, Resolve("ai"))
	require.Equal(t, []models.CategoryNode{{ID: "medium-article", Name: "Medium Article"}}, Resolve("medium-article"))
	require.Equal(t, []models.CategoryNode{{ID: "magazines", Name: "Magazines"}}, Resolve("magazines"))
}

func TestResolve_ReturnsCopy(t *testing.T) {
	t.Parallel()

	got := Resolve("ai")
	got[0].Name = "mutated"

	require.Equal(t, "AI", Resolve("ai")[0].Name)
}

func TestIsCloudProvider(t *testing.T) {
	t.Parallel()

	require.True(t, IsCloudProvider("cloud-aws"))
	require.True(t, IsCloudProvider("cloud-cloudflare"))
	require.False(t, IsCloudProvider(UmbrellaCloud))
	require.False(t, IsCloudProvider("data-security"))
	require.False(t, IsCloudProvider("ai"))
}

func TestProviderName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "aws", ProviderName("cloud-aws"))
	require.Equal(t, "ai", ProviderName("ai"))
}

func TestGroup(t *testing.T) {
	t.Parallel()

	require.Equal(t, "data", Group("data-privacy"))
	require.Equal(t, "cloud", Group("cloud-aws"))
	require.Equal(t, "cloud", Group(UmbrellaCloud))
	require.Equal(t, "ai", Group("ai"))
	require.Equal(t, "", Group("nope"))
}
