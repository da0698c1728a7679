package webstyle

import "html/template"

const cPageHeader = `{{define "pageheader"}}<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN"
"http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml" lang="{{.LangISO}}" xml:lang="{{.LangISO}}" xmlns:og="http://opengraphprotocol.org/schema/" >
<head>
 <title>{{.PageTitle}}</title>
 <link rev="made" href="mailto:{{.SupportEmail}}" />
 <link rel="stylesheet" href="{{.CSSURL}}/img/site{{.CSSSkin}}.css" type="text/css" />
 <style type="text/css">div.restrictedflag {filter:none;}</style>
 <link rel="alternate" type="application/rss+xml" title="{{.SiteName}} RSS" href="{{.RSSURL}}" />
 <link rel="search" type="application/opensearchdescription+xml" href="{{.SiteURL}}/opensearchdescription" title="{{.SiteName}}" />
 <link rel="unapi-server" type="application/xml" title="unAPI" href="{{.SiteURL}}/unapi" />
 <meta http-equiv="Content-Type" content="text/html; charset=utf-8" />
 <meta http-equiv="Content-Language" content="{{.Lang}}" />
 <meta name="description" content="{{.Description}}" />
 <meta name="keywords" content="{{.Keywords}}" />
 <script type="text/javascript" src="{{.CSSURL}}/js/jquery.min.js"></script>
 {{.MetaHeaderAdd}}
</head>
<body{{if .BodyClass}} class="{{.BodyClass}}"{{end}} lang="{{.LangISO}}"{{if .RTL}} dir="rtl"{{end}}>
<div class="pageheader">
{{if .InspectTemplates}}<table width="100%" cellspacing="0" cellpadding="2" border="0">
<tr bgcolor="#aa0000">
<td width="100%">
<font color="#ffffff">
<strong>
<small>
Template inspection mode is enabled.  Please
hover your mouse pointer over any region on the page to see which
template function generated it.
</small>
</strong>
</font>
</td>
</tr>
</table>{{end}}
<div class="headerlogo">
<table class="headerbox" cellspacing="0">
 <tr>
  <td align="right" valign="top" colspan="12">
  <div class="userinfoboxbody">
    {{.UserInfoBox}}
  </div>
  <div class="headerboxbodylogo">
   <a href="{{.HomeURL}}">{{.SiteName}}</a>
  </div>
  </td>
 </tr>
 <tr class="menu">
       <td class="headermoduleboxbodyblank">
             &nbsp;
       </td>
       <td class="headermoduleboxbodyblank">
             &nbsp;
       </td>
       <td class="headermoduleboxbody{{.SearchSelected}}">
             <a class="header{{.SearchSelected}}" href="{{.SearchURL}}">{{.MsgSearch}}</a>
       </td>
       <td class="headermoduleboxbodyblank">
             &nbsp;
       </td>
       <td class="headermoduleboxbody{{.SubmitSelected}}">
             <a class="header{{.SubmitSelected}}" href="{{.SubmitURL}}">{{.MsgSubmit}}</a>
       </td>
       <td class="headermoduleboxbodyblank">
             &nbsp;
       </td>
       <td class="headermoduleboxbody{{.PersonalizeSelected}}">
             {{.UserActivities}}
       </td>
       <td class="headermoduleboxbodyblank">
             &nbsp;
       </td>
       <td class="headermoduleboxbody{{.HelpSelected}}">
             <a class="header{{.HelpSelected}}" href="{{.HelpURL}}">{{.MsgHelp}}</a>
       </td>
       <td class="headermoduleboxbodyblank">&nbsp;</td>
       {{if .AdminActivities}}<td class="headermoduleboxbody{{.AdminSelected}}">{{.AdminActivities}}</td>
       {{end}}<td class="headermoduleboxbodyblanklast">
             &nbsp;
       </td>
 </tr>
</table>
</div>
<table class="navtrailbox">
 <tr>
  <td class="navtrailboxbody">
   {{.NavTrailBox}}
  </td>
 </tr>
</table>
{{.PageHeaderAdd}}
</div>
{{end}}`

const cPageBody = `{{define "pagebody"}}
<div class="pagebody">
  <div class="pagebodystripeleft">
    <div class="pageboxlefttop">{{.BoxLeftTop}}</div>
    <div class="pageboxlefttopadd">{{.BoxLeftTopAdd}}</div>
    <div class="pageboxleftbottomadd">{{.BoxLeftBottomAdd}}</div>
    <div class="pageboxleftbottom">{{.BoxLeftBottom}}</div>
  </div>
  <div class="pagebodystriperight">
    <div class="pageboxrighttop">{{.BoxRightTop}}</div>
    <div class="pageboxrighttopadd">{{.BoxRightTopAdd}}</div>
    <div class="pageboxrightbottomadd">{{.BoxRightBottomAdd}}</div>
    <div class="pageboxrightbottom">{{.BoxRightBottom}}</div>
  </div>
  <div class="pagebodystripemiddle">
    {{.TitlePrologue}}
    {{if .Headline}}<div class="headline_div"><h1 class="headline">{{.Headline}}</h1></div>{{end}}
    {{.TitleEpilogue}}
    {{.Body}}
  </div>
  <div class="clear"></div>
</div>
{{end}}`

const cPageFooter = `{{define "pagefooter"}}
<div class="pagefooter">
{{.PageFooterAdd}}
 <div class="pagefooterstripeleft">
  {{.SiteName}}&nbsp;::&nbsp;<a class="footer" href="{{.SearchURL}}">{{.MsgSearch}}</a>&nbsp;::&nbsp;<a class="footer" href="{{.SubmitURL}}">{{.MsgSubmit}}</a>&nbsp;::&nbsp;<a class="footer" href="{{.AccountURL}}">{{.MsgPersonalize}}</a>&nbsp;::&nbsp;<a class="footer" href="{{.HelpURL}}">{{.MsgHelp}}</a>
  <br />
  {{.MsgPoweredBy}} <a class="footer" href="{{.SoftwareURL}}">{{.SoftwareName}}</a> v{{.Version}}
  <br />
  {{.MsgMaintainedBy}} <a class="footer" href="mailto:{{.SupportEmail}}">{{.SupportEmail}}</a>
  <br />
  {{.LastUpdated}}
 </div>
 <div class="pagefooterstriperight">
  {{.LanguageBox}}
 </div>
</div>
</body>
</html>
{{end}}`

const cNavTrail = `{{define "navtrail"}}{{.Prolog}}{{range $i, $item := .Items}}{{if $i}}{{$.Separator}}{{end}}{{if $item.URL}}<a class="navtrail" href="{{$item.URL}}">{{$item.Label}}</a>{{else}}{{$item.Label}}{{end}}{{end}}{{.Epilog}}{{end}}`

const cLanguageBox = `{{define "languagebox"}}{{.Intro}}<br />{{range $i, $p := .Parts}}{{if $i}} &nbsp;{{end}}{{if $p.Current}}<span class="langinfo">{{$p.Name}}</span>{{else}}<a class="langinfo" href="{{$p.URL}}">{{$p.Name}}</a>{{end}}{{end}}{{end}}`

const cErrorBox = `{{define "errorbox"}}
              <table class="errorbox">
                <thead>
                  <tr>
                    <th class="errorboxheader">
                      <p> {{.Header}}</p>
                    </th>
                  </tr>
                </thead>
                <tbody>
                  <tr>
                    <td class="errorboxbody">
                      <p>{{.Contact}}</p>
                        <blockquote><pre>
URI: http://{{.Host}}{{.Page}}
{{.TimeLabel}}: {{.Time}}
{{.Browser}}
{{.ClientLabel}}: {{.Client}}
{{.Error}}{{.SysError}}{{.Traceback}}
</pre></blockquote>
                    </td>
                  </tr>
                  <tr>
                    <td>
                      <form action="{{.ReportURL}}" method="post">
                        {{.SendErrorLabel}}
                        <input class="adminbutton" type="submit" value="{{.SendLabel}}" />
                        <input type="hidden" name="header" value="{{.Header}}" />
                        <input type="hidden" name="url" value="URI: http://{{.Host}}{{.Page}}" />
                        <input type="hidden" name="time" value="Time: {{.Time}}" />
                        <input type="hidden" name="browser" value="{{.Browser}}" />
                        <input type="hidden" name="client" value="Client: {{.Client}}" />
                        <input type="hidden" name="error" value="{{.Error}}" />
                        <input type="hidden" name="sys_error" value="{{.SysError}}" />
                        <input type="hidden" name="traceback" value="{{.Traceback}}" />
                        <input type="hidden" name="referer" value="{{.Referer}}" />
                      </form>
                    </td>
                  </tr>
                </tbody>
              </table>
{{end}}`

const cRestrictionFlag = `{{define "restrictionflag"}}<div class="restrictedflag"><span>{{.}}</span></div>{{end}}`

const cRecordTop = `{{define "recordtop"}}{{.RestrictionFlag}}
    <div class="detailedrecordbox">
        <div class="detailedrecordtabs">
            <div>
                <ul class="detailedrecordtabs">{{range .Tabs}}<li{{if .Class}} class="{{.Class}}"{{end}}>{{if .Enabled}}<a href="{{.URL}}">{{.Label}} {{.Count}}</a>{{else}}<a>{{.Label}} {{.Count}}</a>{{end}}</li>{{end}}</ul>
            <div id="tabsSpacer" style="clear:both;height:0px">&nbsp;</div></div>
        </div>
        <div class="detailedrecordboxcontent">
            <div class="top-left-folded"></div>
            <div class="top-right-folded"></div>
            <div class="inside">
                {{if .ShowBrief}}<div id="detailedrecordshortreminder">
                    <div id="clip">&nbsp;</div>
                    <div id="HB">
                        {{.Brief}}
                    </div>
                </div>
                <div style="clear:both;height:1px">&nbsp;</div>
                {{end}}
{{end}}`

const cRecordBottom = `{{define "recordbottom"}}
            <div class="bottom-left-folded">{{if .Dates}}<div class="recordlastmodifiedbox" style="position:relative;margin-left:1px">&nbsp;{{.Dates}}</div>{{end}}</div>
            <div class="bottom-right-folded" style="text-align:right;padding-bottom:2px;">
                <span class="moreinfo" style="margin-right:10px;">{{if .SimilarURL}}<a class="moreinfo" href="{{.SimilarURL}}">{{.SimilarLabel}}</a>{{end}}</span></div>
            </div>
            <div class="bottom-left-folded"><div class="recordlastmodifiedbox" style="position:relative;margin-left:1px">&nbsp;{{.Disclaimer}}  <a href="{{.OriginalURL}}">here</a></div></div>
            </div>
            </div>
            <br/>
{{end}}`

const cMiniPanel = `{{define "minipanel"}}
        <br />
<div class="detailedrecordminipanel">
<div class="top-left"></div><div class="top-right"></div>
                <div class="inside">

        <div id="detailedrecordminipanelfile" style="width:33%;float:left;text-align:center;margin-top:0">
             {{.Files}}
        </div>
        <div id="detailedrecordminipanelreview" style="width:30%;float:left;text-align:center">
             {{.Reviews}}
        </div>

        <div id="detailedrecordminipanelactions" style="width:36%;float:right;text-align:right;">
             {{.Actions}}
        </div>
        <div style="clear:both;margin-bottom: 0;"></div>
        </div>
        <div class="bottom-left"></div><div class="bottom-right"></div>
        </div>
{{end}}`

const cErrorPage = `{{define "errorpage"}}
        <p>{{.Message}}</p>
        <p>{{.Alerted}}</p>
        <p>{{.Doubts}}</p>{{end}}`

const cWarning = `{{define "warningmessage"}}<center><font color="red">{{.}}</font></center>{{end}}` +
	`{{define "writewarning"}}
{{.Prologue}}<span class="quicknote">{{if .Kind}}{{.Kind}}: {{end}}{{.Message}}</span>{{.Epilogue}}{{end}}`

var templates = template.Must(template.New("webstyle").Parse(
	cPageHeader + cPageBody + cPageFooter + cNavTrail + cLanguageBox + cErrorBox +
		cRestrictionFlag + cRecordTop + cRecordBottom + cMiniPanel + cErrorPage + cWarning,
))
