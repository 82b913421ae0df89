package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"trend_scout/internal/domain"
)

// tiktokItem is the subset of a TikTok scraper record we read.
type tiktokItem struct {
	ID          string `json:"id"`
	WebVideoURL string `json:"webVideoUrl"`
	Text        string `json:"text"`
	AuthorMeta  *struct {
		Name string  `json:"name"`
		Fans flexInt `json:"fans"`
	} `json:"authorMeta"`
	DiggCount     flexInt   `json:"diggCount"`
	ShareCount    flexInt   `json:"shareCount"`
	CommentCount  flexInt   `json:"commentCount"`
	PlayCount     flexInt   `json:"playCount"`
	CreateTime    flexValue `json:"createTime"`
	CreateTimeISO string    `json:"createTimeISO"`
	Hashtags      flexTags  `json:"hashtags"`
	Covers        *struct {
		Default string `json:"default"`
	} `json:"covers"`
	VideoMeta *struct {
		CoverURL string `json:"coverUrl"`
	} `json:"videoMeta"`
}

type instagramItem struct {
	ID             string    `json:"id"`
	URL            string    `json:"url"`
	Caption        string    `json:"caption"`
	OwnerUsername  string    `json:"ownerUsername"`
	LikesCount     flexInt   `json:"likesCount"`
	CommentsCount  flexInt   `json:"commentsCount"`
	VideoViewCount flexInt   `json:"videoViewCount"`
	Timestamp      flexValue `json:"timestamp"`
	Hashtags       flexTags  `json:"hashtags"`
	DisplayURL     string    `json:"displayUrl"`
}

type facebookItem struct {
	PostID   string    `json:"postId"`
	URL      string    `json:"url"`
	Text     string    `json:"text"`
	Likes    flexInt   `json:"likes"`
	Shares   flexInt   `json:"shares"`
	Comments flexInt   `json:"comments"`
	Time     flexValue `json:"time"`
}

type twitterItem struct {
	ID           string    `json:"id"`
	TweetURL     string    `json:"tweetUrl"`
	URL          string    `json:"url"`
	Text         string    `json:"text"`
	Author       flexValue `json:"author"`
	LikeCount    flexInt   `json:"likeCount"`
	RetweetCount flexInt   `json:"retweetCount"`
	ReplyCount   flexInt   `json:"replyCount"`
	CreatedAt    flexValue `json:"createdAt"`
	Hashtags     flexTags  `json:"hashtags"`
	Entities     *struct {
		Hashtags flexTags `json:"hashtags"`
	} `json:"entities"`
}

// twitterAuthor is only decoded when the author field is an object;
// some scrapers send a bare string instead.
type twitterAuthor struct {
	UserName  string  `json:"userName"`
	Followers flexInt `json:"followers"`
}

type rssItem struct {
	Link        string    `json:"link"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	PubDate     flexValue `json:"pubDate"`
	Image       string    `json:"image"`
}

// flexInt accepts JSON numbers, numeric strings and null. Values beyond
// domain.MaxCount in either direction saturate.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	s := strings.Trim(string(data), `"`)
	if s == "" {
		*f = 0
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = flexInt(min(max(i, -domain.MaxCount), domain.MaxCount))
		return nil
	}
	fl, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return err
	}
	switch {
	case math.IsNaN(fl):
		*f = 0
	case fl >= float64(domain.MaxCount):
		*f = flexInt(domain.MaxCount)
	case fl <= -float64(domain.MaxCount):
		*f = flexInt(-domain.MaxCount)
	default:
		*f = flexInt(int64(fl))
	}
	return nil
}

// flexValue keeps a field's raw JSON for fields whose type varies.
type flexValue json.RawMessage

func (f *flexValue) UnmarshalJSON(data []byte) error {
	*f = append((*f)[:0], data...)
	return nil
}

func (f flexValue) isNull() bool {
	t := bytes.TrimSpace(f)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

// string returns the value as text: strings unquoted, numbers verbatim.
func (f flexValue) string() string {
	if f.isNull() {
		return ""
	}
	var s string
	if err := json.Unmarshal(f, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(f))
}

// flexTags accepts ["a","b"] as well as [{"name":"a"}] or [{"text":"a"}].
type flexTags []string

func (f *flexTags) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
			return nil
		}
		return err
	}
	tags := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			if s != "" {
				tags = append(tags, s)
			}
			continue
		}
		var obj struct {
			Name string `json:"name"`
			Text string `json:"text"`
			Tag  string `json:"tag"`
		}
		if err := json.Unmarshal(r, &obj); err != nil {
			continue
		}
		switch {
		case obj.Name != "":
			tags = append(tags, obj.Name)
		case obj.Text != "":
			tags = append(tags, obj.Text)
		case obj.Tag != "":
			tags = append(tags, obj.Tag)
		}
	}
	*f = tags
	return nil
}
