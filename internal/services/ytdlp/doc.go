// Package ytdlp wraps the yt-dlp command line tool for subtitle-only
// downloads. The client never downloads video content; it asks yt-dlp to
// write subtitle tracks for one language into a target directory and
// reports the files it produced.
package ytdlp
