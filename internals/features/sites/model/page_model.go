package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PageModel struct {
	PageID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:page_id" json:"page_id"`
	PageCentreID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_pages_centre_slug;column:page_centre_id" json:"page_centre_id"`

	// Home page uses slug "index".
	PageSlug  string `gorm:"type:varchar(120);not null;column:page_slug;uniqueIndex:ux_pages_centre_slug" json:"page_slug"`
	PageTitle string `gorm:"type:varchar(150);not null;column:page_title"                                 json:"page_title"`

	PageSortOrder   int  `gorm:"not null;default:0;column:page_sort_order"       json:"page_sort_order"`
	PageIsPublished bool `gorm:"not null;default:false;column:page_is_published" json:"page_is_published"`

	PageCreatedAt time.Time `gorm:"autoCreateTime;column:page_created_at" json:"page_created_at"`
	PageUpdatedAt time.Time `gorm:"autoUpdateTime;column:page_updated_at" json:"page_updated_at"`
}

func (PageModel) TableName() string { return "pages" }

type BlockModel struct {
	BlockID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:block_id" json:"block_id"`
	BlockPageID uuid.UUID `gorm:"type:uuid;not null;index;column:block_page_id"                  json:"block_page_id"`

	BlockKind      string         `gorm:"type:varchar(40);not null;column:block_kind"    json:"block_kind"`
	BlockSortOrder int            `gorm:"not null;default:0;column:block_sort_order"     json:"block_sort_order"`
	BlockContent   datatypes.JSON `gorm:"column:block_content"                           json:"block_content,omitempty"`

	BlockCreatedAt time.Time `gorm:"autoCreateTime;column:block_created_at" json:"block_created_at"`
	BlockUpdatedAt time.Time `gorm:"autoUpdateTime;column:block_updated_at" json:"block_updated_at"`
}

func (BlockModel) TableName() string { return "blocks" }

type NavigationItemModel struct {
	NavigationItemID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:navigation_item_id" json:"navigation_item_id"`
	NavigationItemCentreID uuid.UUID `gorm:"type:uuid;not null;index;column:navigation_item_centre_id"                json:"navigation_item_centre_id"`

	NavigationItemLabel     string `gorm:"type:varchar(80);not null;column:navigation_item_label"  json:"navigation_item_label"`
	NavigationItemHref      string `gorm:"type:varchar(255);not null;column:navigation_item_href"  json:"navigation_item_href"`
	NavigationItemSortOrder int    `gorm:"not null;default:0;column:navigation_item_sort_order"    json:"navigation_item_sort_order"`

	NavigationItemCreatedAt time.Time `gorm:"autoCreateTime;column:navigation_item_created_at" json:"navigation_item_created_at"`
}

func (NavigationItemModel) TableName() string { return "navigation_items" }
