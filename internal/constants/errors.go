package constants

// 认证相关错误
const (
	ErrAuthFailed             = "Email veya şifre hatalı"
	ErrUnauthorized           = "Oturum açmanız gerekiyor"
	ErrInvalidToken           = "Geçersiz oturum anahtarı"
	ErrUserNotFound           = "Kullanıcı bulunamadı"
	ErrInsufficientPermission = "Bu işlem için yetkiniz yok"
)

// 参数相关错误
const (
	ErrInvalidParams   = "Geçersiz istek parametreleri"
	ErrInvalidID       = "Geçersiz kayıt kimliği"
	ErrFileTooLarge    = "Dosya boyutu çok büyük (max 10MB)"
	ErrUnsupportedType = "Desteklenmeyen dosya tipi"
	ErrFileMissing     = "Dosya bulunamadı"
	ErrQueryMissing    = "Sorgu parametresi gerekli"
	ErrInvalidSort     = "Geçersiz sıralama alanı"
)

// 资源不存在
const (
	ErrNotFound             = "Kayıt bulunamadı"
	ErrAnnouncementNotFound = "Duyuru bulunamadı"
	ErrDocumentNotFound     = "Belge bulunamadı"
	ErrVisitNotFound        = "Ziyaret bulunamadı"
	ErrPaymentNotFound      = "Ödeme kalemi bulunamadı"
	ErrSectionNotFound      = "Bölüm bulunamadı"
	ErrContactNotFound      = "Mesaj bulunamadı"
	ErrApplicationNotFound  = "Başvuru bulunamadı"
)

// 系统错误
const (
	ErrInternalServer = "Sunucu hatası"
)

// 成功消息
const (
	Success               = "success"
	SuccessUpdate         = "Güncellendi"
	SuccessDelete         = "Silindi"
	SuccessSettings       = "Ayarlar güncellendi"
	SuccessSection        = "Bölüm güncellendi"
	SuccessContact        = "Mesajınız başarıyla gönderildi"
	SuccessMembership     = "Başvurunuz başarıyla alındı"
	DefaultPaymentButton  = "Ödeme Yap"
	ContactStatusNew      = "new"
	MembershipStatusStart = "pending"
	RoleAdmin             = "admin"
)
