package models

// Category 作品カテゴリ
type Category string

// カテゴリ一覧
const (
	CategoryEksperimen    Category = "eksperimen"
	CategoryFakta         Category = "fakta"
	CategoryKataMotivasi  Category = "kata-kata-motivasi"
	CategoryBeritaTerkini Category = "berita-terkini"
	CategoryKaryaLainnya  Category = "karya-kir-lainnya"
	CategoryInfoKIR       Category = "info-kir"
	CategoryAll           Category = "all" // フィルタ専用。保存はされない
)

// DefaultCategory アップロード時の既定カテゴリ
const DefaultCategory = CategoryEksperimen

// CategoryInfo カテゴリ表示情報
type CategoryInfo struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
}

var categories = []CategoryInfo{
	{ID: CategoryEksperimen, Label: "Eksperimen"},
	{ID: CategoryFakta, Label: "Fakta"},
	{ID: CategoryKataMotivasi, Label: "Kata-kata Motivasi"},
	{ID: CategoryBeritaTerkini, Label: "Berita Terkini"},
	{ID: CategoryKaryaLainnya, Label: "Karya KIR Lainnya"},
	{ID: CategoryInfoKIR, Label: "Info KIR"},
}

// Categories 保存可能なカテゴリ一覧を返す
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// Valid 保存可能なカテゴリかどうか
func (c Category) Valid() bool {
	for _, info := range categories {
		if info.ID == c {
			return true
		}
	}
	return false
}

// Label 表示名
func (c Category) Label() string {
	if c == CategoryAll {
		return "Semua"
	}
	for _, info := range categories {
		if info.ID == c {
			return info.Label
		}
	}
	return string(c)
}

// FilterByCategory 取得済みの作品をカテゴリで絞り込む
// all または空文字の場合は入力をそのまま返す
func FilterByCategory(works []Work, c Category) []Work {
	if c == "" || c == CategoryAll {
		return works
	}
	filtered := make([]Work, 0, len(works))
	for _, w := range works {
		if w.Category == c {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
