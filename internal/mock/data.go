package mock

import (
	"time"

	"github.com/karyakir/karyakir_backend/internal/models"

	"gorm.io/gorm"
)

func strPtr(s string) *string {
	return &s
}

// Works モック作品 (カウンターはSeedで揃える)
func Works(now time.Time) []models.Work {
	return []models.Work{
		{
			Title:      "Pengaruh Cahaya terhadap Pertumbuhan Kecambah",
			Content:    "Kami menanam kacang hijau di tiga kotak dengan intensitas cahaya berbeda dan mengukur tinggi kecambah selama tujuh hari.",
			Category:   models.CategoryEksperimen,
			AuthorName: "Rahma",
			ImageURL:   strPtr("/uploads/works/kecambah.jpg"),
			CreatedAt:  now.Add(-20 * 24 * time.Hour),
		},
		{
			Title:      "Lebah Bisa Mengenali Wajah",
			Content:    "Penelitian menunjukkan lebah madu mampu mengingat pola wajah manusia dengan menggabungkan bagian-bagiannya.",
			Category:   models.CategoryFakta,
			AuthorName: "Dimas",
			CreatedAt:  now.Add(-12 * 24 * time.Hour),
		},
		{
			Title:      "Gagal Itu Data",
			Content:    "Setiap percobaan yang tidak berhasil tetap memberi kita informasi baru. Catat, evaluasi, lalu coba lagi.",
			Category:   models.CategoryKataMotivasi,
			AuthorName: "Bu Sari",
			CreatedAt:  now.Add(-7 * 24 * time.Hour),
		},
		{
			Title:      "Jadwal Lomba Karya Tulis Ilmiah Tingkat Kota",
			Content:    "Pendaftaran lomba dibuka sampai akhir bulan. Tim yang berminat silakan menghubungi pembina.",
			Category:   models.CategoryInfoKIR,
			AuthorName: "Pengurus KIR",
			FileURL:    strPtr("/uploads/works/jadwal_lomba.pdf"),
			CreatedAt:  now.Add(-2 * 24 * time.Hour),
		},
	}
}

// Comments モックコメント (WorkIndexはWorksの添字)
var Comments = []struct {
	WorkIndex  int
	AuthorName string
	Content    string
	Ago        time.Duration
}{
	{0, "Andi", "Apakah suhu ruangannya juga diukur?", 19 * 24 * time.Hour},
	{0, "Rahma", "Iya, suhu dijaga sekitar 27 derajat.", 18 * 24 * time.Hour},
	{1, "Nadia", "Menarik sekali, ada sumber jurnalnya?", 11 * 24 * time.Hour},
	{3, "Fajar", "Satu tim maksimal berapa orang?", 1 * 24 * time.Hour},
}

// Likes モックいいね (WorkIndexはWorksの添字)
var Likes = []struct {
	WorkIndex int
	UserIP    string
}{
	{0, "user_seed_1"},
	{0, "user_seed_2"},
	{1, "user_seed_1"},
	{2, "user_seed_3"},
}

// Seed モックデータを投入しカウンターを揃える
func Seed(db *gorm.DB, now time.Time) ([]models.Work, error) {
	works := Works(now)
	for _, c := range Comments {
		works[c.WorkIndex].CommentsCount++
	}
	for _, l := range Likes {
		works[l.WorkIndex].LikesCount++
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range works {
			if err := tx.Create(&works[i]).Error; err != nil {
				return err
			}
		}

		for _, c := range Comments {
			comment := models.Comment{
				WorkID:     works[c.WorkIndex].ID,
				AuthorName: c.AuthorName,
				Content:    c.Content,
				CreatedAt:  now.Add(-c.Ago),
			}
			if err := tx.Create(&comment).Error; err != nil {
				return err
			}
		}

		for _, l := range Likes {
			like := models.Like{WorkID: works[l.WorkIndex].ID, UserIP: l.UserIP}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return works, nil
}
