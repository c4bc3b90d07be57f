package blog

// PromoFragment is appended verbatim to the body of every submitted post.
const PromoFragment = "\n\n---\n\n<div style=\"background: #f0f9ff; padding: 20px; border-radius: 10px; margin: 20px 0;\">\n" +
	"<h3 style=\"color: #1e40af; margin-bottom: 10px;\">🔍 İş Arıyor musunuz?</h3>\n" +
	"<p style=\"margin-bottom: 15px;\"><strong><a href=\"/\" style=\"color: #2563eb;\">İşBuldum platformunda 50.000+ güncel iş ilanını keşfedin!</a></strong></p>\n" +
	"<ul style=\"list-style: none; padding: 0;\">\n" +
	"<li>✅ <a href=\"/istanbul-is-ilanlari\" style=\"color: #2563eb;\">İstanbul İş İlanları</a></li>\n" +
	"<li>✅ <a href=\"/ankara-is-ilanlari\" style=\"color: #2563eb;\">Ankara İş İlanları</a></li>\n" +
	"<li>✅ <a href=\"/remote-is-ilanlari\" style=\"color: #2563eb;\">Uzaktan Çalışma İlanları</a></li>\n" +
	"<li>✅ <a href=\"/\" style=\"color: #2563eb;\">Tüm İlanları Gör</a></li>\n" +
	"</ul>\n</div>"

func withPromo(content string) string {
	return content + PromoFragment
}
