package docdex

// memcachedDocURL is the canonical document for the Memcached topic.
const memcachedDocURL = "https://docs.acquia.com/acquia-cloud-platform/enabling-memcached-cloud-platform"

// memcachedDocContent is pre-loaded into the page cache at startup so the
// canonical answer is available before any crawl has run.
const memcachedDocContent = `# Enabling Memcached on Cloud Platform

To enable Memcached on your website hosted by Cloud Platform, you must install the Memcache API and Integration module in your codebase, and configure the module for use.

## Configuration for the current Drupal version

For Memcached to function, you must provide additional configuration code that enables autoloading, and identifies Memcached as an alternative cache back-end.

To configure your website for Memcached, make the following changes to your codebase, depending on your subscription type:

### For Cloud Classic:

1. Download the Memcache API and Integration module, and then add the module to your codebase in the modules/contrib/memcache directory. Acquia recommends that you use Composer to install the module:
   ` + "```" + `
   composer require drupal/memcache
   ` + "```" + `

2. For Cloud Classic, do the following:

   a. Add the Composer package that contains the Acquia Memcache settings to your project:
   ` + "```" + `
   composer require acquia/memcache-settings
   ` + "```" + `

   b. For each website that requires Memcached, edit the Cloud Platform database require line in settings.php with a PHP require_once statement, similar to the following example:
   ` + "```php" + `
   if (file_exists('/var/www/site-php')) {
      require('/var/www/site-php/mysite/mysite-settings.inc');
      // Memcached settings for Acquia Hosting
      $memcache_settings_file = DRUPAL_ROOT . "/../vendor/acquia/memcache-settings/memcache.settings.php";
      if (file_exists($memcache_settings_file)) {
        require_once $memcache_settings_file;
      }
   }
   ` + "```" + `

3. Rebuild caches by running the following command, replacing [example.com] with the domain name of your website:
   ` + "```" + `
   drush cr --uri=[example.com]
   ` + "```" + `

4. Truncate all cache_ tables in the database for the website.

### For Cloud Next:
For Cloud Next, you do not need to add anything to your settings.php file as the configuration logic is already included in Cloud Next. If you already have code in settings.php that enables Memcache integration with Cloud Platform, you can opt to remove it.

## Important Notes:
- Do not edit the memcache_key_prefix or memcache_servers settings, as Cloud Platform adds the correct values in Acquia-specific code.
- Test any procedures on a non-production environment before implementing them on production.
- The same steps must be used for CD environments because CD environments are not supported in Cloud Next.

Source: https://docs.acquia.com/acquia-cloud-platform/enabling-memcached-cloud-platform
`

// memcachedTopic builds the pinned rule for Memcached configuration
// queries against the Acquia documentation.
func memcachedTopic() *Topic {
	return &Topic{
		Name:           "memcached",
		Keywords:       []string{"memcache", "memcached", "cache", "caching"},
		ConfigKeywords: []string{"settings.php", "settings", "configuration", "config"},
		ActionKeywords: []string{"enable", "enabling", "configure", "setup", "install", "add", "integration"},
		Phrases: []string{
			"enable memcached",
			"memcache integration",
			"memcached settings",
			"cache backend",
			"acquia memcache",
			"cloud classic memcache",
		},
		CanonicalURL: memcachedDocURL,
		TitleKeyword: "memcached",
		Boost:        1000,
		ContentKeywords: []string{
			"memcache", "settings.php", "cloud classic", "require_once", "composer require",
		},
		KeywordBoost: 50,
		Steps: []string{
			"Install the memcache module: `composer require drupal/memcache`",
			"Add the Acquia memcache settings: `composer require acquia/memcache-settings`",
			"Update settings.php with the require_once statement shown above",
			"Clear caches: `drush cr`",
		},
		Canonical: &Page{
			URL:     memcachedDocURL,
			Title:   "Enabling Memcached on Cloud Platform",
			Content: memcachedDocContent,
			Success: true,
		},
	}
}
