package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/internal/repository"
)

const sitemapAnnouncementLimit = 50

type sitemapPage struct {
	Path     string
	Priority string
}

var staticPages = []sitemapPage{
	{"/", "1.0"},
	{"/kurumsal", "0.8"},
	{"/uyelik", "0.8"},
	{"/hizmetler", "0.8"},
	{"/duyurular", "0.9"},
	{"/ziyaretler", "0.7"},
	{"/odeme", "0.7"},
	{"/iletisim", "0.8"},
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority"`
}

// SitemapService 生成站点地图
type SitemapService struct {
	announcements *repository.Store[model.Announcement, *model.Announcement]
	baseURL       string
}

// NewSitemapService 创建站点地图服务
func NewSitemapService(announcements *repository.Store[model.Announcement, *model.Announcement], baseURL string) *SitemapService {
	return &SitemapService{announcements: announcements, baseURL: strings.TrimRight(baseURL, "/")}
}

// Generate 固定页面加最近发布的公告
func (s *SitemapService) Generate(ctx context.Context) ([]byte, error) {
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{Loc: s.baseURL + p.Path, Priority: p.Priority})
	}

	page, err := s.announcements.List(ctx, repository.ListQuery{Limit: sitemapAnnouncementLimit})
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	for _, a := range page.Items {
		set.URLs = append(set.URLs, sitemapURL{Loc: s.baseURL + "/duyurular/" + a.ID, Priority: "0.6"})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
